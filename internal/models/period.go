package models

import (
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"
)

// InterestPeriod is a half-open interval [Start, End). Periods for one
// account never overlap; End of one period is Start of the next.
type InterestPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewInterestPeriod(start, end time.Time) InterestPeriod {
	return InterestPeriod{
		Start: common.TruncateToDay(start),
		End:   common.TruncateToDay(end),
	}
}

// Days is the calendar day count of the period. Feb 29 counts as one full
// day like any other.
func (p InterestPeriod) Days() int {
	return common.DaysBetween(p.Start, p.End)
}

func (p InterestPeriod) Contains(d time.Time) bool {
	d = common.TruncateToDay(d)
	return !d.Before(p.Start) && d.Before(p.End)
}

func (p InterestPeriod) IsZero() bool {
	return p.Start.IsZero() && p.End.IsZero()
}
