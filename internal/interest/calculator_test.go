package interest_test

import (
	"testing"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/interest"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func flatBalance(d time.Time, amount string) []models.BalancePoint {
	return []models.BalancePoint{{Date: d, Balance: decimal.RequireFromString(amount)}}
}

func TestComputeInterest_DailyBalanceFlat(t *testing.T) {
	// 1000.00 at 5% over 30 days, basis 365, no intra-period compounding:
	// round(1000 * 0.05/365 * 30) = 4.11
	p := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	period := models.NewInterestPeriod(day(2024, time.April, 1), day(2024, time.May, 1))

	got := interest.ComputeInterest(flatBalance(day(2024, time.March, 1), "1000.00"), period, p, 2)
	assert.Equal(t, "4.11", got.String())
}

func TestComputeInterest_DailyCompoundingExceedsSimple(t *testing.T) {
	// daily compounding folds each day's accrual into the next day's
	// principal, so the total must exceed the simple-interest figure
	simplePolicy := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	compoundPolicy := policyWith(models.PERIOD_TYPE_DAILY, models.PERIOD_TYPE_MONTHLY, 1)

	period := models.NewInterestPeriod(day(2024, time.April, 1), day(2024, time.May, 1))
	balances := flatBalance(day(2024, time.January, 1), "100000.00")

	simple := interest.ComputeInterest(balances, period, simplePolicy, 2)
	compound := interest.ComputeInterest(balances, period, compoundPolicy, 2)

	assert.Equal(t, "410.96", simple.String())
	assert.Equal(t, "411.78", compound.String())
	assert.True(t, compound.GreaterThan(simple))
}

func TestComputeInterest_BalanceChangesMidPeriod(t *testing.T) {
	// 1000 for the first 10 days, 2000 for the remaining 20:
	// (1000*10 + 2000*20) * 0.05/365 = 6.8493... -> 6.85
	p := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	period := models.NewInterestPeriod(day(2024, time.April, 1), day(2024, time.May, 1))

	balances := []models.BalancePoint{
		{Date: day(2024, time.April, 1), Balance: decimal.RequireFromString("1000.00")},
		{Date: day(2024, time.April, 11), Balance: decimal.RequireFromString("2000.00")},
	}

	got := interest.ComputeInterest(balances, period, p, 2)
	assert.Equal(t, "6.85", got.String())
}

func TestComputeInterest_RoundsOnlyAtPeriodEnd(t *testing.T) {
	// 100 at 5% per day is 0.0137/day; per-day rounding would yield
	// 0.01*3 = 0.03, end-of-period rounding yields 0.04
	p := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	period := models.NewInterestPeriod(day(2024, time.April, 1), day(2024, time.April, 4))

	got := interest.ComputeInterest(flatBalance(day(2024, time.April, 1), "100.00"), period, p, 2)
	assert.Equal(t, "0.04", got.String())
}

func TestComputeInterest_LeapDayCountsAsFullDay(t *testing.T) {
	// Feb 2024 on the actual basis: 29 days / 366
	p := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	p.Basis = models.DaysInYearBasisActual

	period := models.NewInterestPeriod(day(2024, time.February, 1), day(2024, time.March, 1))
	assert.Equal(t, 29, period.Days())

	got := interest.ComputeInterest(flatBalance(day(2024, time.January, 1), "1000.00"), period, p, 2)
	// 1000 * 0.05/366 * 29 = 3.9617... -> 3.96
	assert.Equal(t, "3.96", got.String())
}

func TestComputeInterest_Basis360(t *testing.T) {
	p := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	p.Basis = models.DaysInYearBasis360

	period := models.NewInterestPeriod(day(2024, time.April, 1), day(2024, time.May, 1))

	got := interest.ComputeInterest(flatBalance(day(2024, time.January, 1), "1000.00"), period, p, 2)
	// 1000 * 0.05/360 * 30 = 4.1666... -> 4.17
	assert.Equal(t, "4.17", got.String())
}

func TestComputeInterest_ZeroAndNegativeBalances(t *testing.T) {
	p := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	period := models.NewInterestPeriod(day(2024, time.April, 1), day(2024, time.May, 1))

	t.Run("zero balance accrues nothing", func(t *testing.T) {
		got := interest.ComputeInterest(nil, period, p, 2)
		assert.True(t, got.IsZero())
	})

	t.Run("negative balance accrues nothing without overdraft interest", func(t *testing.T) {
		got := interest.ComputeInterest(flatBalance(day(2024, time.January, 1), "-500.00"), period, p, 2)
		assert.True(t, got.IsZero())
	})

	t.Run("negative balance accrues at overdraft rate when enabled", func(t *testing.T) {
		odPolicy := p
		odPolicy.OverdraftAllowed = true
		odPolicy.OverdraftRate = decimal.NewNullDecimal(decimal.RequireFromString("0.10"))

		got := interest.ComputeInterest(flatBalance(day(2024, time.January, 1), "-1000.00"), period, odPolicy, 2)
		// -1000 * 0.10/365 * 30 = -8.2191... -> -8.22
		assert.Equal(t, "-8.22", got.String())
	})
}

func TestComputeInterest_AverageDailyBalance(t *testing.T) {
	p := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	p.Method = models.CalculationMethodAverageDailyBalance

	period := models.NewInterestPeriod(day(2024, time.April, 1), day(2024, time.May, 1))

	// 1000 for 15 days then 3000 for 15 days averages to 2000:
	// 2000 * 0.05/365 * 30 = 8.2191... -> 8.22
	balances := []models.BalancePoint{
		{Date: day(2024, time.April, 1), Balance: decimal.RequireFromString("1000.00")},
		{Date: day(2024, time.April, 16), Balance: decimal.RequireFromString("3000.00")},
	}

	got := interest.ComputeInterest(balances, period, p, 2)
	assert.Equal(t, "8.22", got.String())
}

func TestComputeInterest_BalanceBeforePeriodCarries(t *testing.T) {
	// a balance set long before the period is still the balance in effect
	p := policyWith(models.PERIOD_TYPE_MONTHLY, models.PERIOD_TYPE_MONTHLY, 1)
	period := models.NewInterestPeriod(day(2024, time.April, 1), day(2024, time.May, 1))

	got := interest.ComputeInterest(flatBalance(day(2020, time.June, 5), "1000.00"), period, p, 2)
	assert.Equal(t, "4.11", got.String())
}
