package seed

import (
	"errors"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/database/categories"
	"github.com/mrlokans/catalog/internal/entities"
)

const sampleBooks = `0 23/5/1958 50 12.99 1 Things Fall Apart
1 12/11/1999 4361 23.01 2 The Sky Is Not The Limit
2 7/3/1988 12000 39.99 0 Ask The Dust
`

type testStores struct {
	db         *gorm.DB
	books      *books.Repository
	authors    *authors.Repository
	categories *categories.Repository
}

func setupTestDB(t *testing.T) (*testStores, func()) {
	dbPath := "./test_seed_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Category{},
		&entities.Author{},
		&entities.Book{},
	)
	require.NoError(t, err)

	stores := &testStores{
		db:         db,
		books:      books.NewRepository(db),
		authors:    authors.NewRepository(db),
		categories: categories.NewRepository(db),
	}

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return stores, cleanup
}

func (s *testStores) seeder(seed int64) *Seeder {
	return NewSeeder(s.books, s.authors, s.categories, rand.New(rand.NewSource(seed)))
}

func (s *testStores) counts(t *testing.T) (int64, int64, int64) {
	t.Helper()
	b, err := s.books.Count()
	require.NoError(t, err)
	a, err := s.authors.Count()
	require.NoError(t, err)
	c, err := s.categories.Count()
	require.NoError(t, err)
	return b, a, c
}

func TestSeeder_SeedAll(t *testing.T) {
	stores, cleanup := setupTestDB(t)
	defer cleanup()

	err := stores.seeder(1).SeedAll(strings.NewReader(sampleBooks))
	require.NoError(t, err)

	b, a, c := stores.counts(t)
	assert.Equal(t, int64(3), b)
	assert.Equal(t, int64(len(defaultAuthors)), a)
	assert.Equal(t, int64(len(defaultCategories)), c)

	info, err := stores.books.FindInfoByTitle("Things Fall Apart")
	require.NoError(t, err)
	assert.Equal(t, entities.EditionTypeGold, info.EditionType)
	assert.Equal(t, entities.AgeRestrictionTeen, info.AgeRestriction)
	assert.Equal(t, "12.99", info.Price.StringFixed(2))
}

func TestSeeder_SeedAllIsIdempotent(t *testing.T) {
	stores, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, stores.seeder(1).SeedAll(strings.NewReader(sampleBooks)))
	b1, a1, c1 := stores.counts(t)

	require.NoError(t, stores.seeder(2).SeedAll(strings.NewReader(sampleBooks)))
	b2, a2, c2 := stores.counts(t)

	assert.Equal(t, b1, b2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, c1, c2)
}

func TestSeeder_EveryBookHasAuthorAndCategories(t *testing.T) {
	stores, cleanup := setupTestDB(t)
	defer cleanup()

	reader, err := OpenBooks("")
	require.NoError(t, err)
	defer reader.Close()

	require.NoError(t, stores.seeder(7).SeedAll(reader))

	var seeded []entities.Book
	require.NoError(t, stores.db.Preload("Author").Preload("Categories").Find(&seeded).Error)
	require.NotEmpty(t, seeded)

	for _, book := range seeded {
		assert.NotZero(t, book.Author.ID, book.Title)
		assert.GreaterOrEqual(t, len(book.Categories), 1, book.Title)
		assert.LessOrEqual(t, len(book.Categories), MaxCategoriesPerBook, book.Title)

		seen := map[uint]bool{}
		for _, c := range book.Categories {
			assert.False(t, seen[c.ID], "duplicate category on %s", book.Title)
			seen[c.ID] = true
		}
		assert.GreaterOrEqual(t, book.Copies, 0)
	}
}

func TestSeeder_SameSeedSameAssignment(t *testing.T) {
	first, cleanup1 := setupTestDB(t)
	defer cleanup1()

	require.NoError(t, first.seeder(99).SeedAll(strings.NewReader(sampleBooks)))

	var a []entities.Book
	require.NoError(t, first.db.Order("id").Find(&a).Error)

	// Reset the books table and seed again with the same generator seed
	require.NoError(t, first.db.Exec("DELETE FROM books_categories").Error)
	require.NoError(t, first.db.Exec("DELETE FROM books").Error)
	_, err := first.seeder(99).SeedBooks(strings.NewReader(sampleBooks))
	require.NoError(t, err)

	var b []entities.Book
	require.NoError(t, first.db.Order("id").Find(&b).Error)
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].AuthorID, b[i].AuthorID)
	}
}

func TestSeeder_SeedBooksMalformedLeavesStoreEmpty(t *testing.T) {
	stores, cleanup := setupTestDB(t)
	defer cleanup()

	seeder := stores.seeder(1)
	require.NoError(t, seeder.SeedCategories())
	require.NoError(t, seeder.SeedAuthors())

	input := sampleBooks + "5 1/1/2000 10 5 0 Bad Edition\n"
	n, err := seeder.SeedBooks(strings.NewReader(input))

	var formatErr *SeedFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 4, formatErr.Line)
	assert.Equal(t, 0, n)

	count, err := stores.books.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSeeder_SeedBooksBeforeReferenceData(t *testing.T) {
	stores, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := stores.seeder(1).SeedBooks(strings.NewReader(sampleBooks))
	assert.ErrorIs(t, err, ErrEmptyReferenceSet)
}

func TestSeeder_RandomAuthor_Empty(t *testing.T) {
	stores, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := stores.seeder(1).RandomAuthor()
	assert.ErrorIs(t, err, ErrEmptyReferenceSet)
}

func TestSeeder_RandomCategories_Empty(t *testing.T) {
	stores, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := stores.seeder(1).RandomCategories()
	assert.ErrorIs(t, err, ErrEmptyReferenceSet)
}

// fixedRand always returns the largest allowed value.
type fixedRand struct{}

func (fixedRand) Intn(n int) int { return n - 1 }

func TestSeeder_RandomCategories_Bounds(t *testing.T) {
	stores, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, stores.categories.CreateAll([]entities.Category{{Name: "Only"}, {Name: "Two"}}))

	seeder := NewSeeder(stores.books, stores.authors, stores.categories, fixedRand{})
	picked, err := seeder.RandomCategories()
	require.NoError(t, err)
	// Capped by the number of stored categories
	assert.Len(t, picked, 2)
	assert.NotEqual(t, picked[0].ID, picked[1].ID)
}

func TestSeeder_RejectsInvalidBook(t *testing.T) {
	seeder := NewSeeder(nil, nil, nil, fixedRand{})
	seeder.authorSet = []entities.Author{{ID: 1, FirstName: "A", LastName: "B"}}
	seeder.categorySet = []entities.Category{{ID: 1, Name: "Fiction"}}

	record, err := ParseBookLine("0 23/5/1958 50 12.99 1 Fine")
	require.NoError(t, err)

	_, err = seeder.newBook(record)
	require.NoError(t, err)

	record.Price = record.Price.Neg()
	_, err = seeder.newBook(record)

	var formatErr *SeedFormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Contains(t, err.Error(), "Price")
}
