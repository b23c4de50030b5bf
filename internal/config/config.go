package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"   // Local database file (default)
	DatabaseDriverPostgres DatabaseDriver = "postgres" // PostgreSQL server, installs the author books routine
)

type (
	Config struct {
		Database
		Seed
		Demo
	}

	Database struct {
		Driver   DatabaseDriver
		Path     string // SQLite database file
		DSN      string // PostgreSQL connection string
		LogLevel string // silent, error, warn, info
	}
	Seed struct {
		BooksPath  string // Overrides the embedded books file when set
		RandomSeed int64  // 0 seeds the generator from the current time
	}
	Demo struct {
		IncreaseDate   string // Format: "02 Jan 2006"
		IncreaseCopies int
		AuthorFirst    string
		AuthorLast     string
	}
)

// loadDotEnv loads a .env file from the working directory when one exists.
func loadDotEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
}

func NewConfig() *Config {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_driver", string(DatabaseDriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("seed_books_path", "")
	v.SetDefault("seed_random_seed", 0)

	// Demo run defaults
	v.SetDefault("demo_increase_date", "12 Oct 2005")
	v.SetDefault("demo_increase_copies", 100)
	v.SetDefault("demo_author_first", "Amanda")
	v.SetDefault("demo_author_last", "Rice")

	return &Config{
		Database: Database{
			Driver:   DatabaseDriver(v.GetString("DATABASE_DRIVER")),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Seed: Seed{
			BooksPath:  v.GetString("SEED_BOOKS_PATH"),
			RandomSeed: v.GetInt64("SEED_RANDOM_SEED"),
		},
		Demo: Demo{
			IncreaseDate:   v.GetString("DEMO_INCREASE_DATE"),
			IncreaseCopies: v.GetInt("DEMO_INCREASE_COPIES"),
			AuthorFirst:    v.GetString("DEMO_AUTHOR_FIRST"),
			AuthorLast:     v.GetString("DEMO_AUTHOR_LAST"),
		},
	}
}
