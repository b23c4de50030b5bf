// Package seed populates the catalog with its reference data and demo books.
//
// Every step is idempotent: a step whose table already holds rows is skipped.
// Categories and authors must be seeded before books, since each book is
// assigned a random author and a random set of categories.
//
// # Usage
//
//	seeder := seed.NewSeeder(booksRepo, authorsRepo, categoriesRepo, rand.New(rand.NewSource(42)))
//	books, _ := seed.OpenBooks("")
//	defer books.Close()
//	err := seeder.SeedAll(books)
package seed

import (
	"fmt"
	"io"
	"log"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/mrlokans/catalog/internal/entities"
)

// Rand is the random source used for author and category assignment.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// BookStore persists seeded books.
type BookStore interface {
	Count() (int64, error)
	Create(book *entities.Book) error
}

// AuthorStore persists and lists the author reference set.
type AuthorStore interface {
	Count() (int64, error)
	CreateAll(authors []entities.Author) error
	GetAll() ([]entities.Author, error)
}

// CategoryStore persists and lists the category reference set.
type CategoryStore interface {
	Count() (int64, error)
	CreateAll(categories []entities.Category) error
	GetAll() ([]entities.Category, error)
}

type Seeder struct {
	books      BookStore
	authors    AuthorStore
	categories CategoryStore
	rng        Rand
	validate   *validator.Validate

	authorSet   []entities.Author
	categorySet []entities.Category
}

func NewSeeder(books BookStore, authors AuthorStore, categories CategoryStore, rng Rand) *Seeder {
	return &Seeder{
		books:      books,
		authors:    authors,
		categories: categories,
		rng:        rng,
		validate:   newValidator(),
	}
}

// newValidator returns a validator that compares decimals as numbers.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// SeedAll seeds categories, authors and then books read from r.
func (s *Seeder) SeedAll(r io.Reader) error {
	if err := s.SeedCategories(); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := s.SeedAuthors(); err != nil {
		return fmt.Errorf("seed authors: %w", err)
	}
	if _, err := s.SeedBooks(r); err != nil {
		return fmt.Errorf("seed books: %w", err)
	}
	return nil
}

// SeedCategories inserts the category reference set unless categories exist.
func (s *Seeder) SeedCategories() error {
	count, err := s.categories.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.categories.CreateAll(DefaultCategories()); err != nil {
		return err
	}
	s.categorySet = nil
	log.Printf("Seeded %d categories", len(defaultCategories))
	return nil
}

// SeedAuthors inserts the author reference set unless authors exist.
func (s *Seeder) SeedAuthors() error {
	count, err := s.authors.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.authors.CreateAll(DefaultAuthors()); err != nil {
		return err
	}
	s.authorSet = nil
	log.Printf("Seeded %d authors", len(defaultAuthors))
	return nil
}

// SeedBooks parses r and stores one book per line, returning how many were
// stored. Nothing is read when books already exist. The whole file is parsed
// before the first insert, so a malformed line leaves the store untouched.
func (s *Seeder) SeedBooks(r io.Reader) (int, error) {
	count, err := s.books.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	records, err := ParseBooks(r)
	if err != nil {
		return 0, err
	}

	for i, record := range records {
		book, err := s.newBook(record)
		if err != nil {
			return i, err
		}
		if err := s.books.Create(book); err != nil {
			return i, fmt.Errorf("failed to create book %q: %w", record.Title, err)
		}
	}

	log.Printf("Seeded %d books", len(records))
	return len(records), nil
}

func (s *Seeder) newBook(record BookRecord) (*entities.Book, error) {
	author, err := s.RandomAuthor()
	if err != nil {
		return nil, err
	}
	categories, err := s.RandomCategories()
	if err != nil {
		return nil, err
	}

	book := &entities.Book{
		EditionType:    record.EditionType,
		ReleaseDate:    datatypes.Date(record.ReleaseDate),
		Copies:         record.Copies,
		Price:          record.Price,
		AgeRestriction: record.AgeRestriction,
		Title:          record.Title,
		AuthorID:       author.ID,
		Author:         author,
		Categories:     categories,
	}
	if err := s.validate.Struct(book); err != nil {
		return nil, &SeedFormatError{Reason: fmt.Sprintf("invalid book %q", record.Title), Err: err}
	}
	return book, nil
}

// RandomAuthor returns one stored author chosen uniformly at random.
func (s *Seeder) RandomAuthor() (entities.Author, error) {
	if s.authorSet == nil {
		authors, err := s.authors.GetAll()
		if err != nil {
			return entities.Author{}, err
		}
		s.authorSet = authors
	}
	if len(s.authorSet) == 0 {
		return entities.Author{}, fmt.Errorf("random author: %w", ErrEmptyReferenceSet)
	}
	return s.authorSet[s.rng.Intn(len(s.authorSet))], nil
}

// RandomCategories returns between 1 and MaxCategoriesPerBook distinct stored
// categories chosen at random.
func (s *Seeder) RandomCategories() ([]entities.Category, error) {
	if s.categorySet == nil {
		categories, err := s.categories.GetAll()
		if err != nil {
			return nil, err
		}
		s.categorySet = categories
	}
	if len(s.categorySet) == 0 {
		return nil, fmt.Errorf("random categories: %w", ErrEmptyReferenceSet)
	}

	limit := min(MaxCategoriesPerBook, len(s.categorySet))
	n := 1 + s.rng.Intn(limit)

	// Partial Fisher-Yates over a copy, so the cached set keeps its order.
	pool := make([]entities.Category, len(s.categorySet))
	copy(pool, s.categorySet)
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}
