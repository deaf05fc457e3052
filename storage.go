package rates

type (
	Storage interface {
		Store(rows []Row) (int, error)
		GetStorageProviderName() string
		Drop() error
		Close() error
	}
)
