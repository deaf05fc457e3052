package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/rates-exporter/daterange"
)

func TestDateRange_Iter(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	r, err := daterange.Parse("2023-01-01", "2023-01-05")
	assert.Nil(err)
	assert.Equal(5, r.Days())

	dates := make([]string, 0, r.Days())
	it := r.Iter()

	for it.HasNext() {
		dates = append(dates, it.Next().Format(daterange.DateFormat))
	}

	assert.Equal([]string{"2023-01-01", "2023-01-02", "2023-01-03", "2023-01-04", "2023-01-05"}, dates)
}

func TestDateRange_SingleDay(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	r, err := daterange.Parse("2023-06-15", "2023-06-15")
	assert.Nil(err)
	assert.Equal(1, r.Days())

	it := r.Iter()
	assert.True(it.HasNext())
	assert.Equal("2023-06-15", it.Next().Format(daterange.DateFormat))
	assert.False(it.HasNext())
}

func TestDateRange_AcrossMonthBoundary(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	r, err := daterange.Parse("2023-02-27", "2023-03-02")
	assert.Nil(err)
	assert.Equal(4, r.Days())

	it := r.Iter()
	last := time.Time{}
	count := 0

	for it.HasNext() {
		date := it.Next()
		assert.True(date.After(last))
		last = date
		count++
	}

	assert.Equal(4, count)
	assert.Equal("2023-03-02", last.Format(daterange.DateFormat))
}

func TestDateRange_IterIsRestartable(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	r, err := daterange.Parse("2023-01-01", "2023-01-03")
	assert.Nil(err)

	first := collect(r.Iter())
	second := collect(r.Iter())

	assert.Equal(first, second)
}

func TestDateRange_StartAfterEnd(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	_, err := daterange.Parse("2023-01-05", "2023-01-01")
	assert.ErrorIs(err, daterange.ErrInvalidRange)
}

func TestDateRange_InvalidFormat(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	_, err := daterange.Parse("01/05/2023", "2023-01-06")
	assert.NotNil(err)

	_, err = daterange.Parse("2023-01-05", "tomorrow")
	assert.NotNil(err)
}

func collect(it *daterange.Iter) []time.Time {
	dates := make([]time.Time, 0)
	for it.HasNext() {
		dates = append(dates, it.Next())
	}

	return dates
}
