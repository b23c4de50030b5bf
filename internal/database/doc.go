// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, stored routines
//	├── books/           # Book queries, bulk update and purge
//	├── authors/         # Author queries and the author book count routine
//	└── categories/      # Category reference data
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	booksRepo := books.NewRepository(db.DB)
//	authorsRepo := authors.NewRepository(db.DB)
//
//	titles, err := booksRepo.FindByTitleContaining("sk")
//	count, err := authorsRepo.CountBooksByAuthor("Amanda", "Rice")
//
// # Drivers
//
// SQLite is the default. With PostgreSQL the author book count is served by
// the get_books_by_author SQL function installed during migration; SQLite has
// no stored routines, so the same count is issued as a single aggregate
// statement instead.
package database
