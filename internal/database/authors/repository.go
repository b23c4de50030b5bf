// Package authors provides database operations for the author reference set.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	count, err := repo.CountBooksByAuthor("Amanda", "Rice")
package authors

import (
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the number of stored authors.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Count(&count).Error
	return count, err
}

// CreateAll inserts authors in a single batch.
func (r *Repository) CreateAll(authors []entities.Author) error {
	if len(authors) == 0 {
		return nil
	}
	return r.db.Create(&authors).Error
}

// GetAll retrieves every author in insertion order.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("id ASC").Find(&authors).Error
	return authors, err
}

// FindAllOrderByBookCountDesc retrieves authors ordered by how many books they
// have, most first. Authors without books come last.
func (r *Repository) FindAllOrderByBookCountDesc() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Model(&entities.Author{}).
		Select("authors.id, authors.first_name, authors.last_name").
		Joins("LEFT JOIN books ON books.author_id = authors.id").
		Group("authors.id, authors.first_name, authors.last_name").
		Order("COUNT(books.id) DESC, authors.id ASC").
		Find(&authors).Error
	return authors, err
}

// FindByFirstNameEndingWith retrieves authors whose first name ends with suffix.
func (r *Repository) FindByFirstNameEndingWith(suffix string) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Where("first_name LIKE ?", "%"+suffix).Order("id ASC").Find(&authors).Error
	return authors, err
}

// CountBooksByAuthor returns how many books belong to the author with exactly
// the given names. An unknown author yields 0.
//
// On PostgreSQL the count is delegated to the get_books_by_author routine.
// Other dialects run the equivalent aggregate as one statement.
func (r *Repository) CountBooksByAuthor(firstName, lastName string) (int64, error) {
	var count int64
	var err error
	if r.db.Dialector.Name() == "postgres" {
		err = r.db.Raw("SELECT get_books_by_author(?, ?)", firstName, lastName).Scan(&count).Error
	} else {
		err = r.db.Raw(`
			SELECT COUNT(b.id)
			FROM books b
			JOIN authors a ON a.id = b.author_id
			WHERE a.first_name = ? AND a.last_name = ?`, firstName, lastName).Scan(&count).Error
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}
