// Package books provides database operations for the book catalog.
//
// This package implements the catalog.BookStore and seed.BookStore
// interfaces.
//
// # Interface Implementation
//
//	var _ catalog.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	titles, err := repo.FindByTitleContaining("sk")
//
// Bulk operations (IncreaseCopiesReleasedAfter, DeleteWithCopiesBelow) run as
// a single transaction and report the number of affected rows.
package books

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the number of stored books.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// Create inserts a book together with its category links. The author must
// already exist.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Omit("Author").Create(book).Error
}

func (r *Repository) find(query func(db *gorm.DB) *gorm.DB) ([]entities.Book, error) {
	var books []entities.Book
	err := query(r.db.Preload("Author").Preload("Categories")).Order("books.id ASC").Find(&books).Error
	return books, err
}

// FindByAgeRestriction retrieves books with the given age restriction.
func (r *Repository) FindByAgeRestriction(ar entities.AgeRestriction) ([]entities.Book, error) {
	return r.find(func(db *gorm.DB) *gorm.DB {
		return db.Where("age_restriction = ?", ar)
	})
}

// FindByEditionTypeAndCopiesLessThan retrieves books of an edition type with
// fewer than copies copies.
func (r *Repository) FindByEditionTypeAndCopiesLessThan(et entities.EditionType, copies int) ([]entities.Book, error) {
	return r.find(func(db *gorm.DB) *gorm.DB {
		return db.Where("edition_type = ? AND copies < ?", et, copies)
	})
}

// FindByPriceLessThanOrGreaterThan retrieves books priced below low or above high.
func (r *Repository) FindByPriceLessThanOrGreaterThan(low, high decimal.Decimal) ([]entities.Book, error) {
	return r.find(func(db *gorm.DB) *gorm.DB {
		return db.Where("price < ? OR price > ?", low, high)
	})
}

// FindReleasedBeforeOrAfter retrieves books released before start or after end.
func (r *Repository) FindReleasedBeforeOrAfter(start, end time.Time) ([]entities.Book, error) {
	return r.find(func(db *gorm.DB) *gorm.DB {
		return db.Where("release_date < ? OR release_date > ?", datatypes.Date(start), datatypes.Date(end))
	})
}

// FindReleasedBefore retrieves books released strictly before date.
func (r *Repository) FindReleasedBefore(date time.Time) ([]entities.Book, error) {
	return r.find(func(db *gorm.DB) *gorm.DB {
		return db.Where("release_date < ?", datatypes.Date(date))
	})
}

// FindReleasedAfter retrieves books released strictly after date.
func (r *Repository) FindReleasedAfter(date time.Time) ([]entities.Book, error) {
	return r.find(func(db *gorm.DB) *gorm.DB {
		return db.Where("release_date > ?", datatypes.Date(date))
	})
}

// FindByTitleContaining searches titles (case-insensitive partial match).
func (r *Repository) FindByTitleContaining(query string) ([]entities.Book, error) {
	searchPattern := "%" + query + "%"
	return r.find(func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(title) LIKE LOWER(?)", searchPattern)
	})
}

// FindByAuthorLastNameStartingWith retrieves books whose author's last name
// starts with prefix.
func (r *Repository) FindByAuthorLastNameStartingWith(prefix string) ([]entities.Book, error) {
	return r.find(func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN authors ON authors.id = books.author_id").
			Where("authors.last_name LIKE ?", prefix+"%")
	})
}

// FindByAuthorOrderByReleaseDateDesc retrieves the books of an author, newest
// first and then by title.
func (r *Repository) FindByAuthorOrderByReleaseDateDesc(firstName, lastName string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").
		Joins("JOIN authors ON authors.id = books.author_id").
		Where("authors.first_name = ? AND authors.last_name = ?", firstName, lastName).
		Order("books.release_date DESC, books.title ASC").
		Find(&books).Error
	return books, err
}

// CountWithTitleLongerThan counts books whose title has more than length characters.
func (r *Repository) CountWithTitleLongerThan(length int) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("LENGTH(title) > ?", length).Count(&count).Error
	return count, err
}

// TotalCopiesByAuthor sums copies per author, largest total first. Equal
// totals keep author insertion order.
func (r *Repository) TotalCopiesByAuthor() ([]entities.AuthorCopies, error) {
	var rows []entities.AuthorCopies
	err := r.db.Model(&entities.Book{}).
		Select("authors.id AS author_id, authors.first_name, authors.last_name, SUM(books.copies) AS total").
		Joins("JOIN authors ON authors.id = books.author_id").
		Group("authors.id, authors.first_name, authors.last_name").
		Order("total DESC, authors.id ASC").
		Scan(&rows).Error
	return rows, err
}

// FindInfoByTitle retrieves the reduced projection of the book with exactly
// the given title. Returns gorm.ErrRecordNotFound when no book matches.
func (r *Repository) FindInfoByTitle(title string) (*entities.BookInfo, error) {
	var info entities.BookInfo
	err := r.db.Model(&entities.Book{}).
		Select("title, edition_type, age_restriction, price").
		Where("title = ?", title).
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// IncreaseCopiesReleasedAfter adds delta copies to every book released after
// date in a single statement and returns the number of updated books.
func (r *Repository) IncreaseCopiesReleasedAfter(date time.Time, delta int) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Book{}).
			Where("release_date > ?", datatypes.Date(date)).
			UpdateColumn("copies", gorm.Expr("copies + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// DeleteWithCopiesBelow removes every book with fewer than threshold copies,
// along with its category links, and returns the number of removed books.
func (r *Repository) DeleteWithCopiesBelow(threshold int) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM books_categories WHERE book_id IN (SELECT id FROM books WHERE copies < ?)", threshold).Error; err != nil {
			return err
		}

		result := tx.Where("copies < ?", threshold).Delete(&entities.Book{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
