package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entities"
)

// AuthorBooksRoutine is the name of the server-side routine counting the
// books of an author.
const AuthorBooksRoutine = "get_books_by_author"

const createAuthorBooksRoutine = `
CREATE OR REPLACE FUNCTION get_books_by_author(p_first_name VARCHAR, p_last_name VARCHAR)
RETURNS INTEGER AS $$
	SELECT COUNT(b.id)::INTEGER
	FROM books b
	JOIN authors a ON a.id = b.author_id
	WHERE a.first_name = p_first_name AND a.last_name = p_last_name;
$$ LANGUAGE sql STABLE`

type Database struct {
	DB *gorm.DB
}

// Models lists every entity managed by the catalog schema.
func Models() []any {
	return []any{
		&entities.Category{},
		&entities.Author{},
		&entities.Book{},
	}
}

func NewDatabase(cfg config.Database) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}
	if err := database.Migrate(); err != nil {
		return nil, err
	}

	log.Printf("Database initialized successfully (%s)", db.Dialector.Name())

	return database, nil
}

// Migrate creates the catalog tables and, on servers that support them, the
// stored routines.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if d.DB.Dialector.Name() == "postgres" {
		if err := d.DB.Exec(createAuthorBooksRoutine).Error; err != nil {
			return fmt.Errorf("failed to create %s routine: %w", AuthorBooksRoutine, err)
		}
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DatabaseDriverSQLite, "":
		return sqlite.Open(cfg.Path), nil
	case config.DatabaseDriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres driver requires DATABASE_DSN")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
