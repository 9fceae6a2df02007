package models

import "time"

// Cart is the per-user staging area of selected products. There is exactly
// one cart per user (uniqueIndex on UserID); it is created lazily on the
// first cart operation and survives checkout with its items cleared.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one product line in a cart. Quantity is always >= 1; a line
// that would drop below 1 is deleted instead of persisting a zero row.
// Price is the sales price snapshotted when the line was added.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string    `json:"cart_id" gorm:"index;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36)"`
	Product   Product   `json:"-"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"added_at"`
}

// CartItemView is the API shape of a cart line: the line itself plus the
// slim product summary the storefront renders.
type CartItemView struct {
	ID       string         `json:"id"`
	Product  ProductSummary `json:"product"`
	Quantity int            `json:"quantity"`
	Price    float64        `json:"price"`
}

// CartSummary is the response body for every cart read and mutation.
type CartSummary struct {
	CartItems  []CartItemView `json:"cartItems"`
	TotalPrice float64        `json:"totalPrice"`
}

// Summarize builds the API view of the cart, recomputing the total as the
// sum of price x quantity over all lines. Items must be loaded with their
// products.
func (c *Cart) Summarize() CartSummary {
	summary := CartSummary{
		CartItems: make([]CartItemView, 0, len(c.Items)),
	}
	for _, item := range c.Items {
		summary.CartItems = append(summary.CartItems, CartItemView{
			ID:       item.ID,
			Product:  item.Product.Summary(),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
		summary.TotalPrice += item.Price * float64(item.Quantity)
	}
	return summary
}
