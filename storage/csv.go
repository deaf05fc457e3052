package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	rates "github.com/malusev998/rates-exporter"
)

const csvDateFormat = "2006-01-02"

var csvHeader = []string{"date", "base_currency", "target_currency", "rate"}

type csvStorage struct {
	path string
}

func NewCSVStorage(config CSVConfig) (rates.Storage, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("csv storage: output path is empty")
	}

	return csvStorage{path: config.Path}, nil
}

// Store overwrites the file at path with the header and one line per row.
// The destination is only touched here, so a run that fails before storing
// leaves any previous output intact; a failure mid-write may leave a
// truncated file behind.
func (c csvStorage) Store(rows []rates.Row) (int, error) {
	file, err := os.Create(c.path)

	if err != nil {
		return 0, fmt.Errorf("failed to create output file %s: %w", c.path, err)
	}

	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Date.Format(csvDateFormat),
			row.Base,
			row.Target,
			row.Rate.String(),
		}

		if err := writer.Write(record); err != nil {
			return 0, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush output file %s: %w", c.path, err)
	}

	return len(rows), nil
}

func (c csvStorage) GetStorageProviderName() string {
	return string(CSV)
}

func (c csvStorage) Drop() error {
	err := os.Remove(c.path)

	if os.IsNotExist(err) {
		return nil
	}

	return err
}

func (c csvStorage) Close() error {
	return nil
}
