package bookkeeping

import (
	"fmt"
	"strings"
	"time"
)

// PeriodType is the base unit of a recurrence rule.
type PeriodType int

const (
	PeriodHour PeriodType = iota
	PeriodDay
	PeriodWeek
	PeriodMonth
	PeriodYear
)

func (p PeriodType) String() string {
	switch p {
	case PeriodHour:
		return "hour"
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		panic(fmt.Sprintf("unknown period type %d", p))
	}
}

// ParsePeriodType parses a string into a PeriodType.
func ParsePeriodType(s string) (PeriodType, error) {
	switch strings.ToLower(s) {
	case "hour", "hourly":
		return PeriodHour, nil
	case "day", "daily":
		return PeriodDay, nil
	case "week", "weekly":
		return PeriodWeek, nil
	case "month", "monthly":
		return PeriodMonth, nil
	case "year", "yearly":
		return PeriodYear, nil
	default:
		return PeriodDay, fmt.Errorf("unknown period type %q", s)
	}
}

// Approximate unit lengths. Months and years are not fixed-length in the
// calendar; recurrence math deliberately uses these approximations, so
// MONTH/YEAR schedules drift slightly. That drift is contract, not a bug.
const (
	hourLength = time.Hour
	dayLength  = 24 * time.Hour
	weekLength = 7 * dayLength
	// monthLength approximates a month as 30 days.
	monthLength = 30 * dayLength
	// yearLength approximates a year as 365 days.
	yearLength = 365 * dayLength
)

// Length returns the approximate duration of one base unit.
func (p PeriodType) Length() time.Duration {
	switch p {
	case PeriodHour:
		return hourLength
	case PeriodDay:
		return dayLength
	case PeriodWeek:
		return weekLength
	case PeriodMonth:
		return monthLength
	case PeriodYear:
		return yearLength
	default:
		panic(fmt.Sprintf("unknown period type %d", p))
	}
}

// Recurrence is a periodic rule: a base unit, a multiplier and an optional
// start/end window.
type Recurrence struct {
	Period      PeriodType
	Multiplier  int
	PeriodStart time.Time
	PeriodEnd   time.Time // zero means open-ended
}

// NewRecurrence creates a rule repeating every multiplier base units.
// A multiplier below 1 is normalized to 1.
func NewRecurrence(period PeriodType, multiplier int) Recurrence {
	if multiplier < 1 {
		multiplier = 1
	}
	return Recurrence{Period: period, Multiplier: multiplier}
}

// PeriodLength returns the approximate duration of one recurrence period:
// multiplier times the base unit length.
func (r Recurrence) PeriodLength() time.Duration {
	m := r.Multiplier
	if m < 1 {
		m = 1
	}
	return time.Duration(m) * r.Period.Length()
}

// Description returns a human-readable form of the rule, e.g.
// "every 2 weeks" or "every month until 2026-12-31".
func (r Recurrence) Description() string {
	var b strings.Builder
	if r.Multiplier > 1 {
		fmt.Fprintf(&b, "every %d %ss", r.Multiplier, r.Period)
	} else {
		fmt.Fprintf(&b, "every %s", r.Period)
	}
	if !r.PeriodStart.IsZero() {
		fmt.Fprintf(&b, " from %s", r.PeriodStart.Format("2006-01-02"))
	}
	if !r.PeriodEnd.IsZero() {
		fmt.Fprintf(&b, " until %s", r.PeriodEnd.Format("2006-01-02"))
	}
	return b.String()
}

// InferPeriodType recovers a recurrence rule from an approximate period
// length. It tries YEAR, MONTH, WEEK then DAY divisors in that priority
// order and takes the first unit dividing the length into a positive integer
// quotient, which becomes the multiplier. Largest unit first minimizes the
// multiplier and yields the most readable schedule; if nothing divides
// evenly the result defaults to one day.
func InferPeriodType(periodLength time.Duration) (PeriodType, int) {
	for _, p := range []PeriodType{PeriodYear, PeriodMonth, PeriodWeek, PeriodDay} {
		unit := p.Length()
		if periodLength > 0 && periodLength%unit == 0 {
			return p, int(periodLength / unit)
		}
	}
	return PeriodDay, 1
}
