// Package catalog implements the read, aggregate and bulk update operations
// offered over the book catalog, and formats their results for display.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entities"
)

// Date layouts accepted by the date based operations.
const (
	CutoffDateLayout   = "02-01-2006"  // dd-MM-yyyy
	IncreaseDateLayout = "02 Jan 2006" // dd MMM yyyy
	displayDateLayout  = "2006-01-02"
)

// BookStore is the book query interface the catalog runs against.
type BookStore interface {
	FindByAgeRestriction(ar entities.AgeRestriction) ([]entities.Book, error)
	FindByEditionTypeAndCopiesLessThan(et entities.EditionType, copies int) ([]entities.Book, error)
	FindByPriceLessThanOrGreaterThan(low, high decimal.Decimal) ([]entities.Book, error)
	FindReleasedBeforeOrAfter(start, end time.Time) ([]entities.Book, error)
	FindReleasedBefore(date time.Time) ([]entities.Book, error)
	FindReleasedAfter(date time.Time) ([]entities.Book, error)
	FindByTitleContaining(query string) ([]entities.Book, error)
	FindByAuthorLastNameStartingWith(prefix string) ([]entities.Book, error)
	FindByAuthorOrderByReleaseDateDesc(firstName, lastName string) ([]entities.Book, error)
	CountWithTitleLongerThan(length int) (int64, error)
	TotalCopiesByAuthor() ([]entities.AuthorCopies, error)
	FindInfoByTitle(title string) (*entities.BookInfo, error)
	IncreaseCopiesReleasedAfter(date time.Time, delta int) (int64, error)
	DeleteWithCopiesBelow(threshold int) (int64, error)
}

// AuthorStore is the author query interface the catalog runs against.
type AuthorStore interface {
	FindAllOrderByBookCountDesc() ([]entities.Author, error)
	FindByFirstNameEndingWith(suffix string) ([]entities.Author, error)
	CountBooksByAuthor(firstName, lastName string) (int64, error)
}

type Service struct {
	books   BookStore
	authors AuthorStore
}

func NewService(books BookStore, authors AuthorStore) *Service {
	return &Service{books: books, authors: authors}
}

func titles(books []entities.Book) []string {
	result := make([]string, 0, len(books))
	for _, b := range books {
		result = append(result, b.Title)
	}
	return result
}

func formatBooks(books []entities.Book, format func(b entities.Book) string) []string {
	result := make([]string, 0, len(books))
	for _, b := range books {
		result = append(result, format(b))
	}
	return result
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func yearBounds(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func parseDate(input, layout string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, &DateParseError{Input: input, Layout: layout, Err: err}
	}
	return t, nil
}

// BookTitlesByAgeRestriction returns the titles of books whose age
// restriction matches name, ignoring case.
func (s *Service) BookTitlesByAgeRestriction(name string) ([]string, error) {
	ar, err := entities.ParseAgeRestriction(name)
	if err != nil {
		return nil, err
	}

	books, err := s.books.FindByAgeRestriction(ar)
	if err != nil {
		return nil, err
	}
	return titles(books), nil
}

// BookTitlesByEditionWithCopiesBelow returns the titles of books of the named
// edition type with fewer than copies copies.
func (s *Service) BookTitlesByEditionWithCopiesBelow(edition string, copies int) ([]string, error) {
	et, err := entities.ParseEditionType(edition)
	if err != nil {
		return nil, err
	}

	books, err := s.books.FindByEditionTypeAndCopiesLessThan(et, copies)
	if err != nil {
		return nil, err
	}
	return titles(books), nil
}

// BooksPricedOutside returns "title - $price" for books priced below low or
// above high.
func (s *Service) BooksPricedOutside(low, high decimal.Decimal) ([]string, error) {
	books, err := s.books.FindByPriceLessThanOrGreaterThan(low, high)
	if err != nil {
		return nil, err
	}
	return formatBooks(books, func(b entities.Book) string {
		return fmt.Sprintf("%s - $%s", b.Title, formatPrice(b.Price))
	}), nil
}

// BookTitlesNotReleasedIn returns the titles of books released outside year.
func (s *Service) BookTitlesNotReleasedIn(year int) ([]string, error) {
	start, end := yearBounds(year)
	books, err := s.books.FindReleasedBeforeOrAfter(start, end)
	if err != nil {
		return nil, err
	}
	return titles(books), nil
}

// BooksReleasedBefore returns "title EDITION price" for books released
// strictly before date, given as dd-MM-yyyy.
func (s *Service) BooksReleasedBefore(date string) ([]string, error) {
	cutoff, err := parseDate(date, CutoffDateLayout)
	if err != nil {
		return nil, err
	}

	books, err := s.books.FindReleasedBefore(cutoff)
	if err != nil {
		return nil, err
	}
	return formatBooks(books, func(b entities.Book) string {
		return fmt.Sprintf("%s %s %s", b.Title, b.EditionType, formatPrice(b.Price))
	}), nil
}

// BooksReleasedAfterYear returns the books released after Dec 31 of year.
func (s *Service) BooksReleasedAfterYear(year int) ([]entities.Book, error) {
	_, end := yearBounds(year)
	return s.books.FindReleasedAfter(end)
}

// AuthorsWithBooksReleasedBeforeYear returns the distinct names of authors
// with at least one book released before Jan 1 of year.
func (s *Service) AuthorsWithBooksReleasedBeforeYear(year int) ([]string, error) {
	start, _ := yearBounds(year)
	books, err := s.books.FindReleasedBefore(start)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var names []string
	for _, b := range books {
		if seen[b.AuthorID] {
			continue
		}
		seen[b.AuthorID] = true
		names = append(names, b.Author.FullName())
	}
	return names, nil
}

// BooksByAuthor returns "title releaseDate copies" for the books of an author,
// newest first.
func (s *Service) BooksByAuthor(firstName, lastName string) ([]string, error) {
	books, err := s.books.FindByAuthorOrderByReleaseDateDesc(firstName, lastName)
	if err != nil {
		return nil, err
	}
	return formatBooks(books, func(b entities.Book) string {
		return fmt.Sprintf("%s %s %d", b.Title, time.Time(b.ReleaseDate).Format(displayDateLayout), b.Copies)
	}), nil
}

// BookTitlesContaining returns the titles containing query, ignoring case.
func (s *Service) BookTitlesContaining(query string) ([]string, error) {
	books, err := s.books.FindByTitleContaining(query)
	if err != nil {
		return nil, err
	}
	return titles(books), nil
}

// BooksByAuthorLastNamePrefix returns "title (firstName lastName)" for books
// whose author's last name starts with prefix.
func (s *Service) BooksByAuthorLastNamePrefix(prefix string) ([]string, error) {
	books, err := s.books.FindByAuthorLastNameStartingWith(prefix)
	if err != nil {
		return nil, err
	}
	return formatBooks(books, func(b entities.Book) string {
		return fmt.Sprintf("%s (%s)", b.Title, b.Author.FullName())
	}), nil
}

// CountBooksWithTitleLongerThan counts books whose title exceeds length characters.
func (s *Service) CountBooksWithTitleLongerThan(length int) (int64, error) {
	return s.books.CountWithTitleLongerThan(length)
}

// TotalCopiesByAuthor returns "firstName lastName - total" per author,
// largest total first.
func (s *Service) TotalCopiesByAuthor() ([]string, error) {
	rows, err := s.books.TotalCopiesByAuthor()
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(rows))
	for _, row := range rows {
		result = append(result, fmt.Sprintf("%s %s - %d", row.FirstName, row.LastName, row.Total))
	}
	return result, nil
}

// BookByTitle returns the reduced projection of the book titled exactly
// title, or ErrNotFound.
func (s *Service) BookByTitle(title string) (*entities.BookInfo, error) {
	info, err := s.books.FindInfoByTitle(title)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// AuthorsByBookCount returns author names ordered by book count, most first.
func (s *Service) AuthorsByBookCount() ([]string, error) {
	authors, err := s.authors.FindAllOrderByBookCountDesc()
	if err != nil {
		return nil, err
	}
	return authorNames(authors), nil
}

// AuthorsWithFirstNameEndingWith returns the names of authors whose first
// name ends with suffix.
func (s *Service) AuthorsWithFirstNameEndingWith(suffix string) ([]string, error) {
	authors, err := s.authors.FindByFirstNameEndingWith(suffix)
	if err != nil {
		return nil, err
	}
	return authorNames(authors), nil
}

func authorNames(authors []entities.Author) []string {
	result := make([]string, 0, len(authors))
	for _, a := range authors {
		result = append(result, a.FullName())
	}
	return result
}

// IncreaseCopiesReleasedAfter adds delta copies to every book released after
// date, given as dd MMM yyyy (e.g. "04 Jul 1999"), and returns the number of
// books updated.
func (s *Service) IncreaseCopiesReleasedAfter(date string, delta int) (int64, error) {
	if delta <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDelta, delta)
	}

	after, err := parseDate(date, IncreaseDateLayout)
	if err != nil {
		return 0, err
	}

	updated, err := s.books.IncreaseCopiesReleasedAfter(after, delta)
	if err != nil {
		return 0, fmt.Errorf("failed to increase copies: %w", err)
	}
	return updated, nil
}

// RemoveBooksWithCopiesBelow deletes every book with fewer than threshold
// copies and returns the number of books removed.
func (s *Service) RemoveBooksWithCopiesBelow(threshold int) (int64, error) {
	removed, err := s.books.DeleteWithCopiesBelow(threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to remove books: %w", err)
	}
	return removed, nil
}

// RemoveLowStockBooks deletes every book with fewer than
// config.LowStockThreshold copies.
func (s *Service) RemoveLowStockBooks() (int64, error) {
	return s.RemoveBooksWithCopiesBelow(config.LowStockThreshold)
}

// AuthorBookCount returns how many books the author with exactly the given
// names has. An unknown author yields 0.
func (s *Service) AuthorBookCount(firstName, lastName string) (int64, error) {
	return s.authors.CountBooksByAuthor(firstName, lastName)
}
