package repositories

import (
	"lapak/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll lists products, optionally restricted to one category.
	// An empty category means no filter.
	GetAll(category string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
