package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	rates "github.com/malusev998/rates-exporter"
)

type ExchangeRatesAPIFetcher struct {
	Ctx       context.Context
	URL       string
	AccessKey string
	Base      string
}

// Fetch queries the dated history endpoint, one day per request.
func (f ExchangeRatesAPIFetcher) Fetch(date time.Time, targets []string) (rates.RateRecord, error) {
	if f.AccessKey == "" {
		return rates.RateRecord{}, ErrUnauthorized
	}

	url := f.URL

	if url == "" {
		url = ExchangeRatesAPIURL
	}

	url = strings.TrimRight(url, "/") + "/" + date.Format(dateFormat)

	ctx := f.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	req, formattedTargets, err := getData(ctx, url, targets)

	if err != nil {
		return rates.RateRecord{}, err
	}

	q := req.URL.Query()
	q.Add("access_key", f.AccessKey)
	q.Add("base", f.Base)
	q.Add("symbols", formattedTargets)

	req.URL.RawQuery = q.Encode()

	client := &http.Client{}
	res, err := client.Do(req)

	if err != nil {
		return rates.RateRecord{}, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return rates.RateRecord{}, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	if res.StatusCode != http.StatusOK {
		errorRes := exchangeRatesAPIError{}
		_ = json.Unmarshal(body, &errorRes)

		return rates.RateRecord{}, handleHTTPStatusCodeError(res, errorRes.Error.Info)
	}

	var data exchangeRatesAPIResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return rates.RateRecord{}, err
	}

	base := data.Base

	if base == "" {
		base = f.Base
	}

	return buildRecord(date, data.Date, base, data.Rates), nil
}
