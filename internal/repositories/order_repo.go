package repositories

import (
	"lapak/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	// PlaceOrder commits a checkout: it decrements stock for every order
	// line, creates the order with its items, and clears the source cart,
	// all as a single atomic unit. On any failure nothing is persisted.
	PlaceOrder(cartID string, order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	// Delete removes an order and its items. Stock decremented at checkout
	// is not restored.
	Delete(id string) error
}
