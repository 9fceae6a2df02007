package repositories

import (
	"fmt"
	"sync"
	"time"

	"lapak/internal/apperrors"
	"lapak/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart     // keyed by user ID
	items map[string]models.CartItem // keyed by item ID
	mu    sync.RWMutex

	// products is consulted to embed product data on reads, mirroring the
	// Preload the GORM implementation does. Optional.
	products *MockProductRepository
}

// NewMockCartRepository creates a new instance of MockCartRepository. The
// product repository may be nil when product embedding is not needed.
func NewMockCartRepository(products *MockProductRepository) *MockCartRepository {
	return &MockCartRepository{
		carts:    make(map[string]models.Cart),
		items:    make(map[string]models.CartItem),
		products: products,
	}
}

// GetOrCreateByUserID returns the user's cart, creating it if absent.
func (r *MockCartRepository) GetOrCreateByUserID(userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		cart = models.Cart{
			ID:        uuid.New().String(),
			UserID:    userID,
			CreatedAt: time.Now(),
		}
		r.carts[userID] = cart
	}

	cart.Items = r.itemsForCart(cart.ID)
	return &cart, nil
}

// itemsForCart collects the lines of one cart, embedding product data when a
// product repository is attached. Callers must hold the lock.
func (r *MockCartRepository) itemsForCart(cartID string) []models.CartItem {
	items := []models.CartItem{}
	for _, item := range r.items {
		if item.CartID != cartID {
			continue
		}
		if r.products != nil {
			if product, err := r.products.GetByID(item.ProductID); err == nil {
				item.Product = *product
			}
		}
		items = append(items, item)
	}
	return items
}

// FindItem looks up the line for a product within a cart.
func (r *MockCartRepository) FindItem(cartID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.CartID == cartID && item.ProductID == productID {
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: cart item for product %s", apperrors.ErrNotFound, productID)
}

// GetItem looks up a cart line by its own ID.
func (r *MockCartRepository) GetItem(itemID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: cart item %s", apperrors.ErrNotFound, itemID)
	}
	return &item, nil
}

// CreateItem adds a new line to a cart.
func (r *MockCartRepository) CreateItem(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	r.items[item.ID] = *item
	return nil
}

// SaveItem persists a changed cart line.
func (r *MockCartRepository) SaveItem(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("%w: cart item %s", apperrors.ErrNotFound, item.ID)
	}
	r.items[item.ID] = *item
	return nil
}

// DeleteItem removes a cart line by its ID.
func (r *MockCartRepository) DeleteItem(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("%w: cart item %s", apperrors.ErrNotFound, itemID)
	}
	delete(r.items, itemID)
	return nil
}

// DeleteByUserID removes the user's cart and all of its items.
func (r *MockCartRepository) DeleteByUserID(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil
	}
	for id, item := range r.items {
		if item.CartID == cart.ID {
			delete(r.items, id)
		}
	}
	delete(r.carts, userID)
	return nil
}

// ClearCart removes every line of one cart, leaving the cart row in place.
// Used by MockOrderRepository to mimic the checkout transaction.
func (r *MockCartRepository) ClearCart(cartID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
}
