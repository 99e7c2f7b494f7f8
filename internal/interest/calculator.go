package interest

import (
	"sort"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"

	"github.com/shopspring/decimal"
)

// ComputeInterest accrues interest over period for the given balance
// history and policy, rounded half-up to scale minor units at the end of
// the period only. Intermediate values stay at extended decimal precision
// so per-day rounding error can never accumulate.
//
// balances must be ordered by date ascending; each point is the running
// balance in effect from that date until the next point.
func ComputeInterest(balances []models.BalancePoint, period models.InterestPeriod, policy models.InterestPolicy, scale int32) decimal.Decimal {
	if period.Days() <= 0 {
		return decimal.Zero.Round(scale)
	}

	var total decimal.Decimal
	switch policy.Method {
	case models.CalculationMethodAverageDailyBalance:
		total = averageDailyBalanceInterest(balances, period, policy)
	default:
		total = dailyBalanceInterest(balances, period, policy)
	}

	return total.Round(scale)
}

// dailyBalanceInterest walks the period one calendar day at a time, using
// the balance in effect on each day. Interest accrued in a finished
// compounding sub-period joins the principal for the following days.
func dailyBalanceInterest(balances []models.BalancePoint, period models.InterestPeriod, policy models.InterestPolicy) decimal.Decimal {
	var compounded, subAccrued decimal.Decimal
	nextCmpd := nextBoundary(policy.CompoundingPeriod, policy.AnchorDay, period.Start)

	for day := period.Start; day.Before(period.End); day = day.AddDate(0, 0, 1) {
		principal := balanceAt(balances, day).Add(compounded)
		subAccrued = subAccrued.Add(dailyAccrual(principal, policy, day.Year()))

		next := day.AddDate(0, 0, 1)
		if !next.Before(nextCmpd) && next.Before(period.End) {
			compounded = compounded.Add(subAccrued)
			subAccrued = decimal.Zero
			nextCmpd = nextBoundary(policy.CompoundingPeriod, policy.AnchorDay, nextCmpd)
		}
	}

	return compounded.Add(subAccrued)
}

// averageDailyBalanceInterest applies a single period rate to the average
// of the daily balances over the period.
func averageDailyBalanceInterest(balances []models.BalancePoint, period models.InterestPeriod, policy models.InterestPolicy) decimal.Decimal {
	var sum decimal.Decimal
	for day := period.Start; day.Before(period.End); day = day.AddDate(0, 0, 1) {
		sum = sum.Add(balanceAt(balances, day))
	}

	days := decimal.NewFromInt(int64(period.Days()))
	avg := sum.Div(days)

	// the period rate is the sum of the daily rates, so an actual basis
	// spanning a year boundary stays exact
	var periodRate decimal.Decimal
	rate := rateFor(avg, policy)
	if rate.IsZero() {
		return decimal.Zero
	}
	for day := period.Start; day.Before(period.End); day = day.AddDate(0, 0, 1) {
		basis := decimal.NewFromInt(int64(policy.Basis.Days(day.Year())))
		periodRate = periodRate.Add(rate.Div(basis))
	}

	return avg.Mul(periodRate)
}

// dailyAccrual is one day of interest on principal: zero for non-positive
// balances unless overdraft interest is enabled, in which case the
// overdraft rate applies symmetrically and the accrual is negative.
func dailyAccrual(principal decimal.Decimal, policy models.InterestPolicy, year int) decimal.Decimal {
	rate := rateFor(principal, policy)
	if rate.IsZero() {
		return decimal.Zero
	}

	basis := decimal.NewFromInt(int64(policy.Basis.Days(year)))
	return principal.Mul(rate).Div(basis)
}

func rateFor(principal decimal.Decimal, policy models.InterestPolicy) decimal.Decimal {
	if principal.IsPositive() {
		return policy.AnnualRate
	}
	if policy.OverdraftInterestEnabled() {
		return policy.OverdraftRate.Decimal
	}
	return decimal.Zero
}

// balanceAt returns the balance in effect on day: the last point at or
// before it, or zero before the first point (the opening balance).
func balanceAt(balances []models.BalancePoint, day time.Time) decimal.Decimal {
	day = common.TruncateToDay(day)

	idx := sort.Search(len(balances), func(i int) bool {
		return common.TruncateToDay(balances[i].Date).After(day)
	})
	if idx == 0 {
		return decimal.Zero
	}
	return balances[idx-1].Balance
}
