package services

import (
	"errors"
	"fmt"
	"time"

	rates "github.com/malusev998/rates-exporter"
	"github.com/malusev998/rates-exporter/daterange"
)

var ErrNoTargets = errors.New("no target currencies given")

// MissingRateError reports a requested code absent from one day's response.
type MissingRateError struct {
	Date time.Time
	Code string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("rate for %s is missing from the %s response", e.Code, e.Date.Format(daterange.DateFormat))
}

type ExportService struct {
	Fetcher rates.Fetcher
	Storage []rates.Storage
}

var _ rates.Service = ExportService{}

// Export fetches every date in the range sequentially, flattens each response
// into rows, and hands the complete table to the storages only after the last
// date succeeded. Any failure aborts the run before anything is written, so
// an output file from an earlier run is never partially replaced.
func (s ExportService) Export(dates daterange.DateRange, targets []string) (map[string]int, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	table := make(rates.Table, 0, dates.Days()*len(targets))
	it := dates.Iter()

	for it.HasNext() {
		date := it.Next()

		record, err := s.Fetcher.Fetch(date, targets)

		if err != nil {
			return nil, err
		}

		rows, err := accumulate(record, targets)

		if err != nil {
			return nil, err
		}

		table = append(table, rows...)
	}

	written := make(map[string]int, len(s.Storage))

	for _, st := range s.Storage {
		count, err := st.Store(table)

		if err != nil {
			return nil, err
		}

		written[st.GetStorageProviderName()] = count
	}

	return written, nil
}

// accumulate turns one day's record into rows, one per target, keeping the
// order the targets were given in.
func accumulate(record rates.RateRecord, targets []string) ([]rates.Row, error) {
	rows := make([]rates.Row, 0, len(targets))

	for _, target := range targets {
		rate, ok := record.Rates[target]

		if !ok {
			return nil, &MissingRateError{Date: record.Date, Code: target}
		}

		rows = append(rows, rates.Row{
			Date:   record.Date,
			Base:   record.Base,
			Target: target,
			Rate:   rate,
		})
	}

	return rows, nil
}
