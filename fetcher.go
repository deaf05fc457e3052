package rates

import "time"

type (
	Fetcher interface {
		Fetch(date time.Time, targets []string) (RateRecord, error)
	}
)
