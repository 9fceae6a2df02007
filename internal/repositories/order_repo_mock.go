package repositories

import (
	"fmt"
	"sync"
	"time"

	"lapak/internal/apperrors"
	"lapak/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository. To
// mimic the checkout transaction it needs access to the in-memory product
// and cart stores it shares state with.
type MockOrderRepository struct {
	orders   map[string]models.Order
	mu       sync.RWMutex
	products *MockProductRepository
	carts    *MockCartRepository
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
// The product and cart repositories may be nil when PlaceOrder is not used.
func NewMockOrderRepository(products *MockProductRepository, carts *MockCartRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		products: products,
		carts:    carts,
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, id)
	}
	return &order, nil
}

// GetByUserID returns one user's orders.
func (r *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := []models.Order{}
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}

// PlaceOrder mimics the checkout transaction: check every line's stock
// first, then decrement, record the order, and clear the cart. The upfront
// check keeps the two-phase apply all-or-nothing.
func (r *MockOrderRepository) PlaceOrder(cartID string, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range order.Items {
		product, err := r.products.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product.PackageSize < item.Quantity {
			return fmt.Errorf("%w: %s (requested %d, available %d)",
				apperrors.ErrInsufficientStock, product.Name, item.Quantity, product.PackageSize)
		}
	}
	for _, item := range order.Items {
		if err := r.products.DecrementStock(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order

	r.carts.ClearCart(cartID)
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, id)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Delete removes an order and its items. Stock is not restored.
func (r *MockOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, id)
	}
	delete(r.orders, id)
	return nil
}
