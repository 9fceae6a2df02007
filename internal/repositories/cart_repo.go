package repositories

import "lapak/internal/models"

// CartRepository defines the interface for cart and cart-item data access.
type CartRepository interface {
	// GetOrCreateByUserID returns the user's cart with its items and their
	// products loaded, creating an empty cart row if the user has none yet.
	GetOrCreateByUserID(userID string) (*models.Cart, error)
	// FindItem looks up the cart line for a product within a cart.
	FindItem(cartID, productID string) (*models.CartItem, error)
	// GetItem looks up a cart line by its own ID.
	GetItem(itemID string) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	SaveItem(item *models.CartItem) error
	DeleteItem(itemID string) error
	// DeleteByUserID removes the user's cart together with its items.
	DeleteByUserID(userID string) error
}
