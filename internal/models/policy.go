package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"bitbucket.org/Amartha/go-savings-engine/internal/common"

	"github.com/shopspring/decimal"
)

// PeriodType is the grain of a compounding or posting schedule.
type PeriodType int32

const (
	PERIOD_TYPE_UNDEFINED PeriodType = iota
	PERIOD_TYPE_DAILY
	PERIOD_TYPE_MONTHLY
	PERIOD_TYPE_QUARTERLY
	PERIOD_TYPE_ANNUAL
)

const (
	PeriodTypeDaily     = "daily"
	PeriodTypeMonthly   = "monthly"
	PeriodTypeQuarterly = "quarterly"
	PeriodTypeAnnual    = "annual"
)

var (
	MapPeriodType = map[PeriodType]string{
		PERIOD_TYPE_DAILY:     PeriodTypeDaily,
		PERIOD_TYPE_MONTHLY:   PeriodTypeMonthly,
		PERIOD_TYPE_QUARTERLY: PeriodTypeQuarterly,
		PERIOD_TYPE_ANNUAL:    PeriodTypeAnnual,
	}
	MapPeriodTypeReverse = map[string]PeriodType{
		PeriodTypeDaily:     PERIOD_TYPE_DAILY,
		PeriodTypeMonthly:   PERIOD_TYPE_MONTHLY,
		PeriodTypeQuarterly: PERIOD_TYPE_QUARTERLY,
		PeriodTypeAnnual:    PERIOD_TYPE_ANNUAL,
	}
)

func (p PeriodType) String() string {
	return MapPeriodType[p]
}

// Months returns the period length in months; 0 for daily.
func (p PeriodType) Months() int {
	switch p {
	case PERIOD_TYPE_MONTHLY:
		return 1
	case PERIOD_TYPE_QUARTERLY:
		return 3
	case PERIOD_TYPE_ANNUAL:
		return 12
	default:
		return 0
	}
}

func (p PeriodType) Value() (driver.Value, error) {
	s, ok := MapPeriodType[p]
	if !ok {
		return nil, fmt.Errorf("unknown period type: %d", p)
	}
	return s, nil
}

func (p *PeriodType) Scan(src interface{}) error {
	var raw string
	switch src := src.(type) {
	case string:
		raw = src
	case []byte:
		raw = string(src)
	default:
		return fmt.Errorf("type %T not supported by Scan", src)
	}

	v, ok := MapPeriodTypeReverse[strings.ToLower(raw)]
	if !ok {
		return fmt.Errorf("unknown period type: %q", raw)
	}
	*p = v
	return nil
}

// CalculationMethod selects how the balance feeds the interest formula.
type CalculationMethod string

const (
	CalculationMethodDailyBalance        CalculationMethod = "daily_balance"
	CalculationMethodAverageDailyBalance CalculationMethod = "average_daily_balance"
)

func (m CalculationMethod) Valid() bool {
	return m == CalculationMethodDailyBalance || m == CalculationMethodAverageDailyBalance
}

// DaysInYearBasis is the year denominator of the daily rate.
type DaysInYearBasis string

const (
	DaysInYearBasis360    DaysInYearBasis = "360"
	DaysInYearBasis365    DaysInYearBasis = "365"
	DaysInYearBasisActual DaysInYearBasis = "actual"
)

func (b DaysInYearBasis) Valid() bool {
	return b == DaysInYearBasis360 || b == DaysInYearBasis365 || b == DaysInYearBasisActual
}

// Days resolves the denominator for a given calendar year. Only the actual
// basis depends on the year.
func (b DaysInYearBasis) Days(year int) int {
	switch b {
	case DaysInYearBasis360:
		return 360
	case DaysInYearBasisActual:
		return common.DaysInYear(year)
	default:
		return 365
	}
}

// InterestPolicy is the product configuration the engine consumes as a
// given fact. It never changes mid-period.
type InterestPolicy struct {
	CompoundingPeriod PeriodType          `json:"compoundingPeriod"`
	PostingPeriod     PeriodType          `json:"postingPeriod"`
	Method            CalculationMethod   `json:"calculationMethod"`
	AnnualRate        decimal.Decimal     `json:"annualRate"`
	Basis             DaysInYearBasis     `json:"daysInYearBasis"`
	AnchorDay         int                 `json:"anchorDay"`
	MinimumBalance    decimal.Decimal     `json:"minimumBalance"`
	OverdraftAllowed  bool                `json:"overdraftAllowed"`
	OverdraftRate     decimal.NullDecimal `json:"overdraftRate"`
}

// Validate rejects malformed or contradictory policies at account setup so
// they never reach the scheduler.
func (p InterestPolicy) Validate() error {
	if _, ok := MapPeriodType[p.CompoundingPeriod]; !ok {
		return fmt.Errorf("%w: unknown compounding period", common.ErrInvalidPolicy)
	}
	if _, ok := MapPeriodType[p.PostingPeriod]; !ok {
		return fmt.Errorf("%w: unknown posting period", common.ErrInvalidPolicy)
	}

	// compounding must be at least as fine-grained as posting: posting
	// monthly while compounding annually would post interest that has
	// not accrued yet
	if p.CompoundingPeriod > p.PostingPeriod {
		return fmt.Errorf("%w: compounding period %s is coarser than posting period %s",
			common.ErrInvalidPolicy, p.CompoundingPeriod, p.PostingPeriod)
	}

	if !p.Method.Valid() {
		return fmt.Errorf("%w: unknown calculation method %q", common.ErrInvalidPolicy, p.Method)
	}

	if !p.Basis.Valid() {
		return fmt.Errorf("%w: unknown days-in-year basis %q", common.ErrInvalidPolicy, p.Basis)
	}

	if p.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: negative annual rate", common.ErrInvalidPolicy)
	}

	if p.PostingPeriod != PERIOD_TYPE_DAILY && (p.AnchorDay < 1 || p.AnchorDay > 31) {
		return fmt.Errorf("%w: anchor day %d out of range", common.ErrInvalidPolicy, p.AnchorDay)
	}

	if p.OverdraftRate.Valid && !p.OverdraftAllowed {
		return fmt.Errorf("%w: overdraft rate set but overdraft not allowed", common.ErrInvalidPolicy)
	}

	return nil
}

// OverdraftInterestEnabled reports whether negative balances accrue
// symmetric interest at the dedicated overdraft rate.
func (p InterestPolicy) OverdraftInterestEnabled() bool {
	return p.OverdraftAllowed && p.OverdraftRate.Valid
}
