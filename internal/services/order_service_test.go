package services_test

import (
	"testing"

	"lapak/internal/apperrors"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(eventType string, body []byte) error {
	args := m.Called(eventType, body)
	return args.Error(0)
}

// orderFixture bundles the in-memory stores behind an order service.
type orderFixture struct {
	service  *services.OrderService
	carts    *repositories.MockCartRepository
	products *repositories.MockProductRepository
	orders   *repositories.MockOrderRepository
	mq       *MockEventPublisher
}

func newOrderFixture() *orderFixture {
	products := repositories.NewMockProductRepository()
	carts := repositories.NewMockCartRepository(products)
	orders := repositories.NewMockOrderRepository(products, carts)
	mq := new(MockEventPublisher)
	return &orderFixture{
		service:  services.NewOrderService(orders, carts, mq),
		carts:    carts,
		products: products,
		orders:   orders,
		mq:       mq,
	}
}

// seedCart creates a product and puts quantity of it in the user's cart.
func (f *orderFixture) seedCart(t *testing.T, userID, name string, price float64, stock, quantity int) *models.Product {
	t.Helper()

	product := &models.Product{Name: name, MRP: price, SalesPrice: price, PackageSize: stock}
	require.NoError(t, f.products.Create(product))

	cart, err := f.carts.GetOrCreateByUserID(userID)
	require.NoError(t, err)
	require.NoError(t, f.carts.CreateItem(&models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     price,
	}))
	return product
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	f := newOrderFixture()

	_, err := f.service.Checkout("user-1")
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	f.mq.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_Success(t *testing.T) {
	f := newOrderFixture()
	f.mq.On("Publish", "order.created", mock.Anything).Return(nil).Once()

	productA := f.seedCart(t, "user-1", "Product A", 100, 2, 2)
	productB := f.seedCart(t, "user-1", "Product B", 50, 1, 1)

	order, err := f.service.Checkout("user-1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 250.0, order.TotalAmount)
	require.Len(t, order.Items, 2)

	// The total is exactly the sum of frozen line prices.
	var sum float64
	for _, item := range order.Items {
		sum += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, order.TotalAmount, sum)

	// Stock went down by exactly the ordered quantities.
	a, err := f.products.GetByID(productA.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, a.PackageSize)
	b, err := f.products.GetByID(productB.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, b.PackageSize)

	// The cart is empty but still exists.
	cart, err := f.carts.GetOrCreateByUserID("user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	f.mq.AssertExpectations(t)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	f := newOrderFixture()

	productC := f.seedCart(t, "user-1", "Product C", 30, 1, 3)

	_, err := f.service.Checkout("user-1")
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Product C")

	// Nothing was mutated: no order, stock untouched, cart intact.
	orders, err := f.orders.GetAll()
	require.NoError(t, err)
	assert.Empty(t, orders)

	c, err := f.products.GetByID(productC.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.PackageSize)

	cart, err := f.carts.GetOrCreateByUserID("user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	f.mq.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestOrderService_GetUserOrder_Ownership(t *testing.T) {
	f := newOrderFixture()
	f.mq.On("Publish", "order.created", mock.Anything).Return(nil)

	f.seedCart(t, "user-1", "Product A", 100, 5, 1)
	order, err := f.service.Checkout("user-1")
	require.NoError(t, err)

	got, err := f.service.GetUserOrder("user-1", order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// Someone else's order reads as not found.
	_, err = f.service.GetUserOrder("user-2", order.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = f.service.GetUserOrder("user-1", "no-such-order")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	f := newOrderFixture()
	f.mq.On("Publish", "order.created", mock.Anything).Return(nil)
	f.mq.On("Publish", "order.status_changed", mock.Anything).Return(nil)

	f.seedCart(t, "user-1", "Product A", 100, 5, 1)
	order, err := f.service.Checkout("user-1")
	require.NoError(t, err)

	// pending -> confirmed -> shipped -> delivered
	updated, err := f.service.UpdateOrderStatus(order.ID, "confirmed")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)

	// Unknown status value
	_, err = f.service.UpdateOrderStatus(order.ID, "teleported")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	// Legal next hop only: confirmed cannot jump to delivered
	_, err = f.service.UpdateOrderStatus(order.ID, "delivered")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	updated, err = f.service.UpdateOrderStatus(order.ID, "shipped")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	updated, err = f.service.UpdateOrderStatus(order.ID, "delivered")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)

	// Delivered is terminal.
	_, err = f.service.UpdateOrderStatus(order.ID, "cancelled")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	// Unknown order
	_, err = f.service.UpdateOrderStatus("no-such-order", "confirmed")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderService_DeleteOrder_DoesNotRestoreStock(t *testing.T) {
	f := newOrderFixture()
	f.mq.On("Publish", "order.created", mock.Anything).Return(nil)

	product := f.seedCart(t, "user-1", "Product A", 100, 5, 2)
	order, err := f.service.Checkout("user-1")
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteOrder(order.ID))

	_, err = f.service.GetOrderByID(order.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Stock stays decremented after the order is gone.
	p, err := f.products.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.PackageSize)

	// Deleting again is not found.
	err = f.service.DeleteOrder(order.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
