package rates

import "github.com/malusev998/rates-exporter/daterange"

type (
	Service interface {
		Export(dates daterange.DateRange, targets []string) (map[string]int, error)
	}
)
