package validation

import (
	"testing"

	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPolicyRequest() models.DoPolicyRequest {
	annualRate, _ := models.NewDecimal("0.05")
	minimumBalance, _ := models.NewDecimal("0")

	return models.DoPolicyRequest{
		CompoundingPeriod: "daily",
		PostingPeriod:     "monthly",
		CalculationMethod: "daily_balance",
		AnnualRate:        annualRate,
		DaysInYearBasis:   "365",
		AnchorDay:         1,
		MinimumBalance:    minimumBalance,
	}
}

func TestValidateStruct(t *testing.T) {
	type args struct {
		toValidate interface{}
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "success DoCreateAccountRequest",
			args: args{
				toValidate: models.DoCreateAccountRequest{
					AccountNumber: "SA-0001",
					OwnerID:       "CL-777",
					Currency:      "IDR",
					OpeningDate:   "2024-01-15",
					Policy:        validPolicyRequest(),
				},
			},
			wantErr: false,
		},
		{
			name: "validate DoCreateAccountRequest missing fields",
			args: args{
				toValidate: models.DoCreateAccountRequest{
					Currency: "IDR",
				},
			},
			wantErr: true,
		},
		{
			name: "validate account number with special characters",
			args: args{
				toValidate: models.DoCreateAccountRequest{
					AccountNumber: "SA@0001!",
					OwnerID:       "CL-777",
					Currency:      "IDR",
					OpeningDate:   "2024-01-15",
					Policy:        validPolicyRequest(),
				},
			},
			wantErr: true,
		},
		{
			name: "validate opening date format",
			args: args{
				toValidate: models.DoCreateAccountRequest{
					AccountNumber: "SA-0001",
					OwnerID:       "CL-777",
					Currency:      "IDR",
					OpeningDate:   "15/01/2024",
					Policy:        validPolicyRequest(),
				},
			},
			wantErr: true,
		},
		{
			name: "validate negative annual rate",
			args: args{
				toValidate: func() models.DoCreateAccountRequest {
					policy := validPolicyRequest()
					policy.AnnualRate, _ = models.NewDecimal("-0.01")
					return models.DoCreateAccountRequest{
						AccountNumber: "SA-0001",
						OwnerID:       "CL-777",
						Currency:      "IDR",
						OpeningDate:   "2024-01-15",
						Policy:        policy,
					}
				}(),
			},
			wantErr: true,
		},
		{
			name: "success SubmitTransactionRequest",
			args: args{
				toValidate: models.SubmitTransactionRequest{
					AccountNumber: "SA-0001",
					Type:          "deposit",
					Amount:        func() models.Decimal { d, _ := models.NewDecimal("100"); return d }(),
					EffectiveDate: "2024-02-10",
				},
			},
			wantErr: false,
		},
		{
			name: "validate unknown transaction type",
			args: args{
				toValidate: models.SubmitTransactionRequest{
					AccountNumber: "SA-0001",
					Type:          "transfer",
					Amount:        func() models.Decimal { d, _ := models.NewDecimal("100"); return d }(),
					EffectiveDate: "2024-02-10",
				},
			},
			wantErr: true,
		},
		{
			name: "validate unknown account status filter",
			args: args{
				toValidate: models.DoGetListAccountRequest{
					Status: "frozen",
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.args.toValidate)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidateStruct_FieldNamesFromJSONTags(t *testing.T) {
	err := ValidateStruct(models.DoCreateAccountRequest{Currency: "IDR"})
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)

	fields := make(map[string]bool)
	for _, e := range merr.Errors {
		if ve, ok := e.(ErrorValidateResponse); ok {
			fields[ve.Field] = true
		}
	}

	assert.True(t, fields["accountNumber"])
	assert.True(t, fields["ownerId"])
	assert.True(t, fields["openingDate"])
}
