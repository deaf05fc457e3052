package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	rates "github.com/malusev998/rates-exporter"
)

type AbstractAPIFetcher struct {
	Ctx    context.Context
	URL    string
	APIKey string
	Base   string
}

func (f AbstractAPIFetcher) Fetch(date time.Time, targets []string) (rates.RateRecord, error) {
	if f.APIKey == "" {
		return rates.RateRecord{}, ErrUnauthorized
	}

	url := f.URL

	if url == "" {
		url = AbstractAPIURL
	}

	ctx := f.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	req, formattedTargets, err := getData(ctx, url, targets)

	if err != nil {
		return rates.RateRecord{}, err
	}

	q := req.URL.Query()
	q.Add("api_key", f.APIKey)
	q.Add("base", f.Base)
	q.Add("date", date.Format(dateFormat))
	q.Add("target", formattedTargets)

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
		errorRes := abstractAPIError{}
		_ = json.Unmarshal(body, &errorRes)

		return rates.RateRecord{}, handleHTTPStatusCodeError(res, errorRes.Error.Message)
	}

	var data abstractAPIResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return rates.RateRecord{}, err
	}

	base := data.Base

	if base == "" {
		base = f.Base
	}

	return buildRecord(date, data.Date, base, data.ExchangeRates), nil
}
