package main

import (
	"context"

	"github.com/spf13/viper"

	rates "github.com/malusev998/rates-exporter"
	"github.com/malusev998/rates-exporter/fetchers"
)

const defaultBaseCurrency = "USD"

// getFetcher builds the configured rates fetcher. It runs after cobra parsed
// the flags, so the config file and environment are already loaded into viper.
func getFetcher(ctx context.Context) (rates.Fetcher, error) {
	providerName := viper.GetString("fetchers.fetch")

	if providerName == "" {
		providerName = "abstractapi"
	}

	provider, err := rates.ConvertToProviderFromString(providerName)

	if err != nil {
		return nil, err
	}

	base := viper.GetString("base")

	if base == "" {
		base = defaultBaseCurrency
	}

	var config interface{}

	switch provider {
	case rates.AbstractAPIProvider:
		config = fetchers.AbstractAPIConfig{
			BaseConfig: fetchers.BaseConfig{
				Ctx:  ctx,
				URL:  viper.GetString("fetchers.abstractapi.url"),
				Base: base,
			},
			APIKey: viper.GetString("fetchers.abstractapi.apikey"),
		}
	case rates.ExchangeRatesAPIProvider:
		config = fetchers.ExchangeRatesAPIConfig{
			BaseConfig: fetchers.BaseConfig{
				Ctx:  ctx,
				URL:  viper.GetString("fetchers.exchangeratesapi.url"),
				Base: base,
			},
			AccessKey: viper.GetString("fetchers.exchangeratesapi.accesskey"),
		}
	}

	return fetchers.NewFetcher(provider, config), nil
}
