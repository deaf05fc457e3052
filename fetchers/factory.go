package fetchers

import (
	"context"

	rates "github.com/malusev998/rates-exporter"
)

type (
	BaseConfig struct {
		Ctx  context.Context
		URL  string
		Base string
	}
	AbstractAPIConfig struct {
		BaseConfig
		APIKey string
	}
	ExchangeRatesAPIConfig struct {
		BaseConfig
		AccessKey string
	}
)

func NewFetcher(provider rates.Provider, config interface{}) rates.Fetcher {
	switch provider {
	case rates.AbstractAPIProvider:
		c := config.(AbstractAPIConfig)

		return AbstractAPIFetcher{
			Ctx:    c.Ctx,
			URL:    c.URL,
			APIKey: c.APIKey,
			Base:   c.Base,
		}
	case rates.ExchangeRatesAPIProvider:
		c := config.(ExchangeRatesAPIConfig)

		return ExchangeRatesAPIFetcher{
			Ctx:       c.Ctx,
			URL:       c.URL,
			AccessKey: c.AccessKey,
			Base:      c.Base,
		}
	}

	return nil
}
