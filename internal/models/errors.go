package models

import (
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

const (
	ErrKeyAccountNotFound     = "SVE-0404"
	ErrKeyAccountExists       = "SVE-0409"
	ErrKeyInvalidPolicy       = "SVE-1001"
	ErrKeyInsufficientFunds   = "SVE-1002"
	ErrKeyPostingConflict     = "SVE-1003"
	ErrKeyAccountNotEligible  = "SVE-1004"
	ErrKeyInvalidLifecycle    = "SVE-1005"
	ErrKeyInvalidTransaction  = "SVE-1006"
	ErrKeyOutOfOrder          = "SVE-1007"
	ErrKeyInternalServerError = "SVE-0500"
	ErrKeyValidation          = "SVE-0422"
	ErrKeyLedgerUnreachable   = "SVE-0503"
)

var MapErrors = MapErrs{
	ErrKeyAccountNotFound:     {Code: ErrKeyAccountNotFound, ErrorMessage: common.ErrAccountNotExists},
	ErrKeyAccountExists:       {Code: ErrKeyAccountExists, ErrorMessage: common.ErrAccountAlreadyExists},
	ErrKeyInvalidPolicy:       {Code: ErrKeyInvalidPolicy, ErrorMessage: common.ErrInvalidPolicy},
	ErrKeyInsufficientFunds:   {Code: ErrKeyInsufficientFunds, ErrorMessage: common.ErrInsufficientFunds},
	ErrKeyPostingConflict:     {Code: ErrKeyPostingConflict, ErrorMessage: common.ErrPostingConflict},
	ErrKeyAccountNotEligible:  {Code: ErrKeyAccountNotEligible, ErrorMessage: common.ErrAccountNotEligible},
	ErrKeyInvalidLifecycle:    {Code: ErrKeyInvalidLifecycle, ErrorMessage: common.ErrInvalidLifecycleChange},
	ErrKeyInvalidTransaction:  {Code: ErrKeyInvalidTransaction, ErrorMessage: common.ErrInvalidTransactionType},
	ErrKeyOutOfOrder:          {Code: ErrKeyOutOfOrder, ErrorMessage: common.ErrOutOfOrderTransaction},
	ErrKeyInternalServerError: {Code: ErrKeyInternalServerError, ErrorMessage: common.ErrInternalServerError},
	ErrKeyValidation:          {Code: ErrKeyValidation, ErrorMessage: common.ErrValidation},
	ErrKeyLedgerUnreachable:   {Code: ErrKeyLedgerUnreachable, ErrorMessage: common.ErrLedgerUnreachable},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
