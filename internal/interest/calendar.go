// Package interest holds the pure core of the engine: calendar period
// resolution and interest computation. Nothing here touches storage.
package interest

import (
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
	"bitbucket.org/Amartha/go-savings-engine/internal/models"
)

// ResolvePeriod determines the oldest posting period that has fully closed
// at referenceDate, accruing from accrualStart (the account's last posted
// date, or its activation date before the first posting). It returns nil
// when no posting boundary has been crossed yet.
//
// A period [start, end) is due once referenceDate >= end. Posting advances
// lastPostedDate to end, which becomes the next accrual start, so repeated
// calls walk the calendar strictly in period order.
func ResolvePeriod(policy models.InterestPolicy, referenceDate, accrualStart time.Time) (*models.InterestPeriod, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	start := common.TruncateToDay(accrualStart)
	end := nextBoundary(policy.PostingPeriod, policy.AnchorDay, start)

	if end.After(common.TruncateToDay(referenceDate)) {
		return nil, nil
	}

	period := models.NewInterestPeriod(start, end)
	return &period, nil
}

// ResolveClosurePeriod is the partial period posted when an account closes
// mid-period: accrual start through the closure day, end exclusive, so the
// closure day itself still accrues. Nil when the closure date precedes the
// accrual start.
func ResolveClosurePeriod(policy models.InterestPolicy, closureDate, accrualStart time.Time) (*models.InterestPeriod, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	start := common.TruncateToDay(accrualStart)
	end := common.TruncateToDay(closureDate).AddDate(0, 0, 1)
	if !end.After(start) {
		return nil, nil
	}

	period := models.NewInterestPeriod(start, end)
	return &period, nil
}

// nextBoundary returns the first boundary of the given grain strictly after
// the given day. Monthly and coarser grains land on the anchor day clamped
// to the month length; quarterly boundaries fall in Jan/Apr/Jul/Oct and
// annual boundaries in January.
func nextBoundary(grain models.PeriodType, anchorDay int, after time.Time) time.Time {
	after = common.TruncateToDay(after)

	if grain == models.PERIOD_TYPE_DAILY {
		return after.AddDate(0, 0, 1)
	}

	if anchorDay < 1 {
		anchorDay = 1
	}

	y, m := after.Year(), after.Month()
	for i := 0; i < 13; i++ {
		if monthAligned(grain, m) {
			day := common.ClampDayOfMonth(y, m, anchorDay)
			candidate := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
			if candidate.After(after) {
				return candidate
			}
		}

		m++
		if m > time.December {
			m = time.January
			y++
		}
	}

	// 13 months always cover the next annual boundary
	return after.AddDate(1, 0, 0)
}

func monthAligned(grain models.PeriodType, m time.Month) bool {
	switch grain {
	case models.PERIOD_TYPE_QUARTERLY:
		return (int(m)-1)%3 == 0
	case models.PERIOD_TYPE_ANNUAL:
		return m == time.January
	default:
		return true
	}
}
