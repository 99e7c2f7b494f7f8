package models

import (
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"

	"github.com/shopspring/decimal"
)

const defaultCurrencyScale int32 = 2

type (
	DoCreateAccountRequest struct {
		AccountNumber string          `json:"accountNumber" validate:"required,noStartEndSpaces,nospecial"`
		OwnerID       string          `json:"ownerId" validate:"required,noStartEndSpaces"`
		Currency      string          `json:"currency" validate:"required,len=3"`
		CurrencyScale *int32          `json:"currencyScale" validate:"omitempty,gte=0,lte=8"`
		OpeningDate   string          `json:"openingDate" validate:"required,date"`
		Policy        DoPolicyRequest `json:"policy" validate:"required"`
	}

	DoPolicyRequest struct {
		CompoundingPeriod string   `json:"compoundingPeriod" validate:"required"`
		PostingPeriod     string   `json:"postingPeriod" validate:"required"`
		CalculationMethod string   `json:"calculationMethod" validate:"required"`
		AnnualRate        Decimal  `json:"annualRate" validate:"decimalGte=0"`
		DaysInYearBasis   string   `json:"daysInYearBasis" validate:"required"`
		AnchorDay         int      `json:"anchorDay"`
		MinimumBalance    Decimal  `json:"minimumBalance" validate:"decimalGte=0"`
		OverdraftAllowed  bool     `json:"overdraftAllowed"`
		OverdraftRate     *Decimal `json:"overdraftRate"`
	}

	DoRegisterOwnerRequest struct {
		OwnerID     string `json:"ownerId" validate:"required,noStartEndSpaces"`
		DisplayName string `json:"displayName" validate:"required"`
		DateOfBirth string `json:"dateOfBirth" validate:"required,date"`
	}

	DoActivateAccountRequest struct {
		ActivationDate string `json:"activationDate" validate:"required,date"`
	}

	DoCloseAccountRequest struct {
		ClosureDate string `json:"closureDate" validate:"required,date"`
	}

	DoGetListAccountRequest struct {
		AccountNumber    string `query:"accountNumber" json:"accountNumber" validate:"omitempty,noStartEndSpaces"`
		OwnerID          string `query:"ownerId" json:"ownerId" validate:"omitempty,noStartEndSpaces"`
		Status           string `query:"status" json:"status" validate:"omitempty,accountStatus"`
		OwnerDateOfBirth string `query:"ownerDateOfBirth" json:"ownerDateOfBirth" validate:"omitempty,date"`
		Limit            int    `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=1000"`
		SortBy           string `query:"sortBy" json:"sortBy" validate:"omitempty,oneof=createdAt updatedAt accountNumber"`
		Sort             string `query:"sort" json:"sort" validate:"omitempty,oneof=asc desc"`
	}

	DoGetListTransactionRequest struct {
		AccountNumber string `query:"accountNumber" json:"accountNumber" validate:"required,noStartEndSpaces"`
		Type          string `query:"type" json:"type" validate:"omitempty,transactionType"`
		From          string `query:"from" json:"from" validate:"omitempty,date"`
		To            string `query:"to" json:"to" validate:"omitempty,date"`
		Limit         int    `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=1000"`
	}

	DoGetBalanceRequest struct {
		AsOf string `query:"asOf" json:"asOf" validate:"omitempty,date"`
	}

	DoRunPostingBatchRequest struct {
		AsOfDate string `json:"asOfDate" validate:"required,date"`
	}

	DoPostAccountRequest struct {
		AsOfDate string `json:"asOfDate" validate:"required,date"`
	}

	DoGetListPostingRequest struct {
		AccountNumber string `query:"accountNumber" json:"accountNumber" validate:"required,noStartEndSpaces"`
		Limit         int    `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=1000"`
	}
)

func (p DoPolicyRequest) ToInterestPolicy() InterestPolicy {
	policy := InterestPolicy{
		CompoundingPeriod: MapPeriodTypeReverse[p.CompoundingPeriod],
		PostingPeriod:     MapPeriodTypeReverse[p.PostingPeriod],
		Method:            CalculationMethod(p.CalculationMethod),
		AnnualRate:        p.AnnualRate.Decimal,
		Basis:             DaysInYearBasis(p.DaysInYearBasis),
		AnchorDay:         p.AnchorDay,
		MinimumBalance:    p.MinimumBalance.Decimal,
		OverdraftAllowed:  p.OverdraftAllowed,
	}

	if p.OverdraftRate != nil {
		policy.OverdraftRate = decimal.NewNullDecimal(p.OverdraftRate.Decimal)
	}

	return policy
}

func (r DoCreateAccountRequest) ToCreateAccount() (CreateAccount, error) {
	openingDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.OpeningDate)
	if err != nil {
		return CreateAccount{}, err
	}

	scale := defaultCurrencyScale
	if r.CurrencyScale != nil {
		scale = *r.CurrencyScale
	}

	return CreateAccount{
		AccountNumber: r.AccountNumber,
		OwnerID:       r.OwnerID,
		Currency:      r.Currency,
		CurrencyScale: scale,
		OpeningDate:   openingDate,
		Policy:        r.Policy.ToInterestPolicy(),
	}, nil
}

func (r DoRegisterOwnerRequest) ToOwner() (Owner, error) {
	dateOfBirth, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.DateOfBirth)
	if err != nil {
		return Owner{}, err
	}

	return Owner{
		OwnerID:     r.OwnerID,
		DisplayName: r.DisplayName,
		DateOfBirth: dateOfBirth,
	}, nil
}

func (r DoGetListAccountRequest) ToFilterOpts() (*AccountFilterOptions, error) {
	opts := &AccountFilterOptions{
		AccountNumber: r.AccountNumber,
		OwnerID:       r.OwnerID,
		Status:        AccountStatus(r.Status),
		Limit:         r.Limit,
		SortBy:        r.SortBy,
		Sort:          r.Sort,
	}

	if r.OwnerDateOfBirth != "" {
		dateOfBirth, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.OwnerDateOfBirth)
		if err != nil {
			return nil, err
		}
		opts.OwnerDateOfBirth = &dateOfBirth
	}

	return opts, nil
}

func (r DoGetListTransactionRequest) ToFilterOpts() (*TransactionFilterOptions, error) {
	opts := &TransactionFilterOptions{
		AccountNumber: r.AccountNumber,
		Type:          TransactionType(r.Type),
		Limit:         r.Limit,
	}

	if r.From != "" {
		from, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.From)
		if err != nil {
			return nil, err
		}
		opts.From = &from
	}

	if r.To != "" {
		to, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.To)
		if err != nil {
			return nil, err
		}
		opts.To = &to
	}

	return opts, nil
}

// AsOfOrNow parses the optional asOf query parameter, defaulting to today.
func (r DoGetBalanceRequest) AsOfOrNow() (time.Time, error) {
	if r.AsOf == "" {
		return common.TruncateToDay(time.Now().UTC()), nil
	}

	return common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.AsOf)
}
