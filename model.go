package rates

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// RateRecord is one day's answer from a rates provider: every rate is
	// expressed relative to Base for the given calendar date.
	RateRecord struct {
		Date  time.Time
		Base  string
		Rates map[string]decimal.Decimal
	}

	// Row is the flat unit written to the output file.
	Row struct {
		Date   time.Time
		Base   string
		Target string
		Rate   decimal.Decimal
	}

	// Table holds all rows of a run, in fetch order.
	Table []Row
)
