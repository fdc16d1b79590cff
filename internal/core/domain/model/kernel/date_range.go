package kernel

import (
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
)

const day = 24 * time.Hour

// Date truncates t to its UTC calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from a to b; negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)) / day)
}

// DateRange is an inclusive rental period expressed in calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("start date")
	}
	if end.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("end date")
	}
	start, end = Date(start), Date(end)
	if end.Before(start) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause("end date",
			fmt.Errorf("%s is before %s", end.Format(time.DateOnly), start.Format(time.DateOnly)))
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time { return r.end }

// Days is the billable length of the period; a same-day rental counts as one.
func (r DateRange) Days() int {
	return max(1, DaysBetween(r.start, r.end))
}

// DaysOverdue is how many days today is past the end of the period.
func (r DateRange) DaysOverdue(today time.Time) int {
	return max(0, DaysBetween(r.end, today))
}

func (r DateRange) IsEqual(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r DateRange) IsZero() bool {
	return r.start.IsZero()
}
