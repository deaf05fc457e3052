package daterange

import (
	"errors"
	"fmt"
	"time"
)

const DateFormat = "2006-01-02"

var ErrInvalidRange = errors.New("start date is after end date")

type (
	// DateRange is an inclusive span of calendar days.
	DateRange struct {
		start time.Time
		end   time.Time
	}

	// Iter walks a DateRange one day at a time. Every call to
	// DateRange.Iter returns a fresh, independent cursor.
	Iter struct {
		current time.Time
		end     time.Time
	}
)

func New(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start.Format(DateFormat), end.Format(DateFormat))
	}

	return DateRange{start: start, end: end}, nil
}

func Parse(start, end string) (DateRange, error) {
	startDate, err := time.Parse(DateFormat, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %s: %w", start, err)
	}

	endDate, err := time.Parse(DateFormat, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %s: %w", end, err)
	}

	return New(startDate, endDate)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days returns how many dates the range yields, end inclusive.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

func (r DateRange) Iter() *Iter {
	return &Iter{current: r.start, end: r.end}
}

func (i *Iter) HasNext() bool {
	return !i.current.After(i.end)
}

func (i *Iter) Next() time.Time {
	date := i.current
	i.current = i.current.AddDate(0, 0, 1)

	return date
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
