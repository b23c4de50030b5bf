package cli

import (
	"math/rand"
	"time"

	"github.com/mrlokans/catalog/internal/catalog"
	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/database/categories"
	"github.com/mrlokans/catalog/internal/seed"
)

// app holds the wired catalog components shared by the commands.
type app struct {
	db      *database.Database
	seeder  *seed.Seeder
	catalog *catalog.Service
}

func newApp(dbCfg config.Database, randomSeed int64) (*app, error) {
	db, err := database.NewDatabase(dbCfg)
	if err != nil {
		return nil, err
	}

	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}

	booksRepo := books.NewRepository(db.DB)
	authorsRepo := authors.NewRepository(db.DB)
	categoriesRepo := categories.NewRepository(db.DB)

	return &app{
		db:      db,
		seeder:  seed.NewSeeder(booksRepo, authorsRepo, categoriesRepo, rand.New(rand.NewSource(randomSeed))),
		catalog: catalog.NewService(booksRepo, authorsRepo),
	}, nil
}

func (a *app) seed(booksPath string) error {
	reader, err := seed.OpenBooks(booksPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	return a.seeder.SeedAll(reader)
}

func (a *app) Close() error {
	return a.db.Close()
}
