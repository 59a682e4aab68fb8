package core

import "time"

// Period is a reporting month in ISO YYYY-MM form.
type Period string

// CurrentPeriod returns the local-timezone current month.
func CurrentPeriod() Period {
	return Period(time.Now().Format("2006-01"))
}

func (p Period) Validate() error {
	if _, err := time.Parse("2006-01", string(p)); err != nil {
		return ErrInvalidPeriod
	}
	return nil
}

// Contains reports whether the date falls inside this period.
func (p Period) Contains(d Date) bool {
	return d.Month() == p
}

// Time returns the first day of the period in UTC, for chart axes.
func (p Period) Time() time.Time {
	t, err := time.Parse("2006-01", string(p))
	if err != nil {
		return time.Time{}
	}
	return t
}
