package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	rates "github.com/malusev998/rates-exporter"
)

const (
	AbstractAPIURL      = "https://exchange-rates.abstractapi.com/v1/historical"
	ExchangeRatesAPIURL = "https://api.exchangeratesapi.io/v1"

	dateFormat = "2006-01-02"
)

var (
	ErrUnauthorized   = errors.New("unauthorized, API key is not provided")
	ErrInvalidRequest = errors.New("request rejected by the rates API")
	ErrTransient      = errors.New("transient fetch failure")
	ErrUnknown        = errors.New("unknown error")
)

type (
	abstractAPIResponse struct {
		Base          string                     `json:"base,omitempty"`
		Date          string                     `json:"date,omitempty"`
		ExchangeRates map[string]decimal.Decimal `json:"exchange_rates,omitempty"`
	}

	abstractAPIError struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	exchangeRatesAPIResponse struct {
		Base  string                     `json:"base,omitempty"`
		Date  string                     `json:"date,omitempty"`
		Rates map[string]decimal.Decimal `json:"rates,omitempty"`
	}

	exchangeRatesAPIError struct {
		Error struct {
			Code string `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
	}
)

func getData(ctx context.Context, url string, targets []string) (*http.Request, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, "", err
	}

	req.Header.Add("Accept", "application/json")

	var builder strings.Builder

	for _, t := range targets {
		builder.WriteString(t)
		builder.WriteRune(',')
	}

	return req, strings.TrimRight(builder.String(), ","), nil
}

// handleHTTPStatusCodeError maps a non-200 response to the error taxonomy:
// 4xx means the request itself is bad and retrying cannot help, 5xx is the
// server's problem and could in principle be retried.
func handleHTTPStatusCodeError(res *http.Response, message string) error {
	switch {
	case res.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: server returned status %d", ErrTransient, res.StatusCode)
	case res.StatusCode >= http.StatusBadRequest:
		if message == "" {
			message = res.Status
		}

		return fmt.Errorf("%w: %s", ErrInvalidRequest, message)
	}

	return fmt.Errorf("%w: unexpected status %d", ErrUnknown, res.StatusCode)
}

// buildRecord prefers the date echoed by the API, falling back to the
// requested one when the field is absent.
func buildRecord(requested time.Time, responseDate, base string, responseRates map[string]decimal.Decimal) rates.RateRecord {
	date := requested

	if responseDate != "" {
		if parsed, err := time.Parse(dateFormat, responseDate); err == nil {
			date = parsed
		}
	}

	record := rates.RateRecord{
		Date:  date,
		Base:  base,
		Rates: make(map[string]decimal.Decimal, len(responseRates)),
	}

	for code, rate := range responseRates {
		record.Rates[code] = rate
	}

	return record
}
