package services

import (
	"encoding/json"
	"fmt"
	"log"

	"lapak/internal/apperrors"
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// EventPublisher publishes order lifecycle events to the message broker.
// Satisfied by *rabbitmq.Client; mocked in tests.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// OrderService handles business logic related to orders: the checkout flow,
// order reads, and the administrative status machine.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	mqClient  EventPublisher
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, mqClient EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		mqClient:  mqClient,
	}
}

// Checkout converts the user's cart into a pending order. Every line's
// sales price and quantity are snapshotted, stock is decremented, and the
// cart is cleared, all inside one repository transaction: either the whole
// checkout commits or nothing does. Returns the new order.
func (s *OrderService) Checkout(userID string) (*models.Order, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	// Pre-validate against the loaded stock so an obviously short line is
	// reported by name before any mutation. The repository re-checks each
	// decrement inside the transaction, which is the authoritative guard.
	var totalAmount float64
	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product.PackageSize < item.Quantity {
			return nil, fmt.Errorf("%w: %s (requested %d, available %d)",
				apperrors.ErrInsufficientStock, item.Product.Name, item.Quantity, item.Product.PackageSize)
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.SalesPrice,
		})
		totalAmount += item.Product.SalesPrice * float64(item.Quantity)
	}

	order := &models.Order{
		UserID:      userID,
		Items:       orderItems,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
	}
	if err := s.orderRepo.PlaceOrder(cart.ID, order); err != nil {
		return nil, err
	}

	s.publish("order.created", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
	})

	return order, nil
}

// GetUserOrders retrieves one user's orders, newest first.
func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetUserOrder retrieves one of the user's own orders. Orders belonging to
// other users read as not found.
func (s *OrderService) GetUserOrder(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
	}
	return order, nil
}

// GetAllOrders retrieves all orders. Admin only.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID. Admin only.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus moves an order to a new status. The raw value must be
// one of the closed enumeration and the move must be allowed by the status
// machine; delivered and cancelled orders cannot change again. Returns the
// updated order.
func (s *OrderService) UpdateOrderStatus(id string, rawStatus string) (*models.Order, error) {
	status, err := models.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move from %s to %s", apperrors.ErrInvalidStatus, order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.publish("order.status_changed", map[string]interface{}{
		"orderID": order.ID,
		"status":  order.Status,
	})

	return order, nil
}

// DeleteOrder removes an order and its items. Stock decremented at checkout
// stays decremented.
func (s *OrderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}

// publish sends an order event to the broker. Publication is best effort;
// a broker failure is logged and never fails the request.
func (s *OrderService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
