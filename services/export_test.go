package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/rates-exporter"
	"github.com/malusev998/rates-exporter/daterange"
	"github.com/malusev998/rates-exporter/services"
)

type (
	MockFetcher struct {
		mock.Mock
	}

	MockStorage struct {
		mock.Mock
	}
)

func (m *MockFetcher) Fetch(date time.Time, targets []string) (rates.RateRecord, error) {
	args := m.Called(date, targets)

	return args.Get(0).(rates.RateRecord), args.Error(1)
}

func (m *MockStorage) Store(rows []rates.Row) (int, error) {
	args := m.Called(rows)

	return args.Int(0), args.Error(1)
}

func (m *MockStorage) GetStorageProviderName() string {
	return "MockStorage"
}

func (m *MockStorage) Drop() error {
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}

func record(date time.Time, codes ...string) rates.RateRecord {
	r := rates.RateRecord{
		Date:  date,
		Base:  "USD",
		Rates: make(map[string]decimal.Decimal, len(codes)),
	}

	for i, code := range codes {
		r.Rates[code] = decimal.NewFromInt(int64(i + 1))
	}

	return r
}

func mustRange(t *testing.T, start, end string) daterange.DateRange {
	t.Helper()
	r, err := daterange.Parse(start, end)
	require.Nil(t, err)

	return r
}

func TestExportService(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	targets := []string{"EUR", "HKD"}
	dates := mustRange(t, "2023-01-01", "2023-01-03")

	t.Run("ExportsEveryDate", func(t *testing.T) {
		fetcher := &MockFetcher{}
		storage := &MockStorage{}
		service := services.ExportService{
			Fetcher: fetcher,
			Storage: []rates.Storage{storage},
		}

		it := dates.Iter()
		for it.HasNext() {
			date := it.Next()
			fetcher.On("Fetch", date, targets).Return(record(date, "EUR", "HKD"), nil)
		}

		storage.On("Store", mock.MatchedBy(func(rows []rates.Row) bool {
			if len(rows) != 6 {
				return false
			}

			// date-major, targets in given order within a date
			return rows[0].Target == "EUR" && rows[1].Target == "HKD" &&
				rows[0].Date.Equal(rows[1].Date) &&
				rows[2].Date.After(rows[1].Date)
		})).Return(6, nil)

		written, err := service.Export(dates, targets)

		asserts.Nil(err)
		asserts.Equal(map[string]int{"MockStorage": 6}, written)
		fetcher.AssertNumberOfCalls(t, "Fetch", 3)
	})

	t.Run("FetchReturnsError", func(t *testing.T) {
		fetcher := &MockFetcher{}
		storage := &MockStorage{}
		service := services.ExportService{
			Fetcher: fetcher,
			Storage: []rates.Storage{storage},
		}

		fetcher.On("Fetch", mock.Anything, targets).Return(rates.RateRecord{}, errors.New("an error has occurred"))

		written, err := service.Export(dates, targets)

		asserts.Nil(written)
		asserts.NotNil(err)
		storage.AssertNotCalled(t, "Store", mock.Anything)
	})

	t.Run("MissingRateAbortsRun", func(t *testing.T) {
		fetcher := &MockFetcher{}
		storage := &MockStorage{}
		service := services.ExportService{
			Fetcher: fetcher,
			Storage: []rates.Storage{storage},
		}

		first := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		fetcher.On("Fetch", first, targets).Return(record(first, "EUR"), nil)

		written, err := service.Export(dates, targets)

		asserts.Nil(written)

		var missing *services.MissingRateError
		asserts.True(errors.As(err, &missing))
		asserts.Equal("HKD", missing.Code)
		asserts.True(missing.Date.Equal(first))
		storage.AssertNotCalled(t, "Store", mock.Anything)
	})

	t.Run("StorageReturnsError", func(t *testing.T) {
		fetcher := &MockFetcher{}
		storage := &MockStorage{}
		service := services.ExportService{
			Fetcher: fetcher,
			Storage: []rates.Storage{storage},
		}

		it := dates.Iter()
		for it.HasNext() {
			date := it.Next()
			fetcher.On("Fetch", date, targets).Return(record(date, "EUR", "HKD"), nil)
		}

		storage.On("Store", mock.Anything).Return(0, errors.New("error while writing the table"))

		written, err := service.Export(dates, targets)

		asserts.Nil(written)
		asserts.NotNil(err)
	})

	t.Run("NoTargets", func(t *testing.T) {
		service := services.ExportService{Fetcher: &MockFetcher{}}

		written, err := service.Export(dates, nil)

		asserts.Nil(written)
		asserts.ErrorIs(err, services.ErrNoTargets)
	})

	t.Run("DuplicateTargetsPassThrough", func(t *testing.T) {
		fetcher := &MockFetcher{}
		storage := &MockStorage{}
		service := services.ExportService{
			Fetcher: fetcher,
			Storage: []rates.Storage{storage},
		}

		single := mustRange(t, "2023-01-01", "2023-01-01")
		duplicated := []string{"EUR", "EUR"}
		first := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

		fetcher.On("Fetch", first, duplicated).Return(record(first, "EUR"), nil)
		storage.On("Store", mock.MatchedBy(func(rows []rates.Row) bool {
			return len(rows) == 2 && rows[0].Target == "EUR" && rows[1].Target == "EUR"
		})).Return(2, nil)

		written, err := service.Export(single, duplicated)

		asserts.Nil(err)
		asserts.Equal(2, written["MockStorage"])
	})
}
