package models

import (
	"fmt"
	"time"

	"lapak/internal/apperrors"
)

// OrderStatus is the closed set of states an order moves through.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting handling
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the store
	OrderStatusAccepted  OrderStatus = "accepted"  // Accepted for fulfilment
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// orderTransitions holds the allowed next states per state. Delivered and
// cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped},
	OrderStatusAccepted:  {OrderStatusShipped},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// ParseOrderStatus maps a raw string onto the status enumeration.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch status := OrderStatus(raw); status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusAccepted,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, raw)
	}
}

// CanTransitionTo reports whether the status machine allows moving from s to
// next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is the immutable record of a completed purchase intent. Item prices
// are frozen at creation time; later product price changes never alter past
// orders. Only Status (and UpdatedAt) change after creation.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is one product line of an order, with quantity and the sales
// price snapshotted at checkout.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
