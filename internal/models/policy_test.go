package models_test

import (
	"testing"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validPolicy() models.InterestPolicy {
	return models.InterestPolicy{
		CompoundingPeriod: models.PERIOD_TYPE_DAILY,
		PostingPeriod:     models.PERIOD_TYPE_MONTHLY,
		Method:            models.CalculationMethodDailyBalance,
		AnnualRate:        decimal.RequireFromString("0.05"),
		Basis:             models.DaysInYearBasis365,
		AnchorDay:         1,
	}
}

func TestInterestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *models.InterestPolicy)
		valid  bool
	}{
		{
			name:   "baseline",
			mutate: func(p *models.InterestPolicy) {},
			valid:  true,
		},
		{
			name: "equal grains",
			mutate: func(p *models.InterestPolicy) {
				p.CompoundingPeriod = models.PERIOD_TYPE_MONTHLY
			},
			valid: true,
		},
		{
			name: "anchor day 31",
			mutate: func(p *models.InterestPolicy) {
				p.AnchorDay = 31
			},
			valid: true,
		},
		{
			name: "compounding coarser than posting",
			mutate: func(p *models.InterestPolicy) {
				p.CompoundingPeriod = models.PERIOD_TYPE_ANNUAL
			},
		},
		{
			name: "unknown compounding period",
			mutate: func(p *models.InterestPolicy) {
				p.CompoundingPeriod = models.PERIOD_TYPE_UNDEFINED
			},
		},
		{
			name: "unknown posting period",
			mutate: func(p *models.InterestPolicy) {
				p.PostingPeriod = models.PeriodType(99)
			},
		},
		{
			name: "unknown method",
			mutate: func(p *models.InterestPolicy) {
				p.Method = "compound_magic"
			},
		},
		{
			name: "unknown basis",
			mutate: func(p *models.InterestPolicy) {
				p.Basis = "366"
			},
		},
		{
			name: "negative rate",
			mutate: func(p *models.InterestPolicy) {
				p.AnnualRate = decimal.RequireFromString("-0.01")
			},
		},
		{
			name: "anchor day zero",
			mutate: func(p *models.InterestPolicy) {
				p.AnchorDay = 0
			},
		},
		{
			name: "anchor day 32",
			mutate: func(p *models.InterestPolicy) {
				p.AnchorDay = 32
			},
		},
		{
			name: "daily posting ignores anchor",
			mutate: func(p *models.InterestPolicy) {
				p.PostingPeriod = models.PERIOD_TYPE_DAILY
				p.AnchorDay = 0
			},
			valid: true,
		},
		{
			name: "overdraft rate without overdraft",
			mutate: func(p *models.InterestPolicy) {
				p.OverdraftRate = decimal.NewNullDecimal(decimal.RequireFromString("0.10"))
			},
		},
		{
			name: "overdraft rate with overdraft",
			mutate: func(p *models.InterestPolicy) {
				p.OverdraftAllowed = true
				p.OverdraftRate = decimal.NewNullDecimal(decimal.RequireFromString("0.10"))
			},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPolicy()
			tt.mutate(&p)

			err := p.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, common.ErrInvalidPolicy)
		})
	}
}

func TestPeriodType_ScanValue(t *testing.T) {
	var p models.PeriodType
	assert.NoError(t, p.Scan("quarterly"))
	assert.Equal(t, models.PERIOD_TYPE_QUARTERLY, p)

	assert.NoError(t, p.Scan([]byte("MONTHLY")))
	assert.Equal(t, models.PERIOD_TYPE_MONTHLY, p)

	assert.Error(t, p.Scan("fortnightly"))
	assert.Error(t, p.Scan(42))

	v, err := models.PERIOD_TYPE_ANNUAL.Value()
	assert.NoError(t, err)
	assert.Equal(t, "annual", v)

	_, err = models.PeriodType(99).Value()
	assert.Error(t, err)
}

func TestDaysInYearBasis_Days(t *testing.T) {
	assert.Equal(t, 360, models.DaysInYearBasis360.Days(2024))
	assert.Equal(t, 365, models.DaysInYearBasis365.Days(2024))
	assert.Equal(t, 366, models.DaysInYearBasisActual.Days(2024))
	assert.Equal(t, 365, models.DaysInYearBasisActual.Days(2023))
}
