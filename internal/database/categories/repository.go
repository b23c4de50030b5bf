// Package categories provides database operations for the category reference set.
package categories

import (
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the number of stored categories.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Category{}).Count(&count).Error
	return count, err
}

// CreateAll inserts categories in a single batch.
func (r *Repository) CreateAll(categories []entities.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.Create(&categories).Error
}

// GetAll retrieves every category in insertion order.
func (r *Repository) GetAll() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}
