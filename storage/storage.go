package storage

import (
	"errors"
	"fmt"
	"strings"

	rates "github.com/malusev998/rates-exporter"
)

type (
	Provider  string
	CSVConfig struct {
		Path string
	}
)

const (
	CSV Provider = "csv"
)

var (
	ErrStorageNotFound = errors.New("storage is not found")
)

func ConvertToProvidersFromStringSlice(strings []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(strings))

	for _, str := range strings {
		provider, err := ConvertToProviderFromString(str)
		if err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	return providers, nil
}

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "csv":
		return CSV, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func NewStorage(provider Provider, config interface{}) (rates.Storage, error) {
	switch provider {
	case CSV:
		return NewCSVStorage(config.(CSVConfig))
	}

	return nil, ErrStorageNotFound
}
