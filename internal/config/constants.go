package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./catalog.db"

	// LowStockThreshold is the copy count below which books are purged
	LowStockThreshold = 1000
)
