package services_test

import (
	"testing"

	"lapak/internal/apperrors"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCartFixture wires a cart service onto the in-memory repositories with
// one seeded product.
func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockProductRepository, *models.Product) {
	t.Helper()

	products := repositories.NewMockProductRepository()
	carts := repositories.NewMockCartRepository(products)
	service := services.NewCartService(carts, products)

	product := &models.Product{
		Name:        "Green Tea",
		MRP:         120,
		SalesPrice:  100,
		PackageSize: 10,
	}
	require.NoError(t, products.Create(product))

	return service, products, product
}

func TestCartService_List_CreatesEmptyCart(t *testing.T) {
	service, _, _ := newCartFixture(t)

	summary, err := service.List("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Empty(t, summary.CartItems)
	assert.Zero(t, summary.TotalPrice)
}

func TestCartService_AddOrUpdate_FirstAddStartsAtOne(t *testing.T) {
	service, _, product := newCartFixture(t)

	// Whatever quantity is requested, the first add inserts exactly one.
	summary, err := service.AddOrUpdate("user-1", product.ID, 5)
	assert.NoError(t, err)
	require.Len(t, summary.CartItems, 1)
	assert.Equal(t, 1, summary.CartItems[0].Quantity)
	assert.Equal(t, product.SalesPrice, summary.CartItems[0].Price)
	assert.Equal(t, product.ID, summary.CartItems[0].Product.ID)
	assert.Equal(t, product.Name, summary.CartItems[0].Product.Name)
	assert.Equal(t, 100.0, summary.TotalPrice)
}

func TestCartService_AddOrUpdate_StepsTowardDesiredQuantity(t *testing.T) {
	service, _, product := newCartFixture(t)

	// Each call moves the line by at most one unit toward the target.
	summary, err := service.AddOrUpdate("user-1", product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CartItems[0].Quantity)

	summary, err = service.AddOrUpdate("user-1", product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CartItems[0].Quantity)

	summary, err = service.AddOrUpdate("user-1", product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.CartItems[0].Quantity)
	assert.Equal(t, 300.0, summary.TotalPrice)

	// At the target the call is a no-op.
	summary, err = service.AddOrUpdate("user-1", product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.CartItems[0].Quantity)

	// And it steps back down one at a time.
	summary, err = service.AddOrUpdate("user-1", product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CartItems[0].Quantity)
}

func TestCartService_AddOrUpdate_ZeroRemovesLine(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddOrUpdate("user-1", product.ID, 1)
	require.NoError(t, err)

	summary, err := service.AddOrUpdate("user-1", product.ID, 0)
	assert.NoError(t, err)
	assert.Empty(t, summary.CartItems)
	assert.Zero(t, summary.TotalPrice)

	// Removing an absent line is not an error either.
	summary, err = service.AddOrUpdate("user-1", product.ID, 0)
	assert.NoError(t, err)
	assert.Empty(t, summary.CartItems)
}

func TestCartService_AddOrUpdate_SteppingBelowOneDeletesLine(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddOrUpdate("user-1", product.ID, 1)
	require.NoError(t, err)

	// Quantity 1 stepping toward 0 deletes the row rather than persisting
	// a zero quantity.
	summary, err := service.AddOrUpdate("user-1", product.ID, 0)
	assert.NoError(t, err)
	assert.Empty(t, summary.CartItems)
}

func TestCartService_AddOrUpdate_UnknownProduct(t *testing.T) {
	service, _, _ := newCartFixture(t)

	_, err := service.AddOrUpdate("user-1", "no-such-product", 1)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartService_AddOrUpdate_NegativeQuantity(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddOrUpdate("user-1", product.ID, -1)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCartService_SetQuantity(t *testing.T) {
	service, _, product := newCartFixture(t)

	summary, err := service.AddOrUpdate("user-1", product.ID, 1)
	require.NoError(t, err)
	itemID := summary.CartItems[0].ID

	// Direct overwrite jumps straight to the value.
	summary, err = service.SetQuantity("user-1", itemID, 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, summary.CartItems[0].Quantity)
	assert.Equal(t, 700.0, summary.TotalPrice)

	// Below 1 is rejected.
	_, err = service.SetQuantity("user-1", itemID, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = service.SetQuantity("user-1", itemID, -2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	// Unknown item is not found.
	_, err = service.SetQuantity("user-1", "no-such-item", 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Another user's item reads as not found.
	_, err = service.SetQuantity("user-2", itemID, 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	service, _, product := newCartFixture(t)

	summary, err := service.AddOrUpdate("user-1", product.ID, 1)
	require.NoError(t, err)
	itemID := summary.CartItems[0].ID

	// Another user cannot remove the line.
	_, err = service.RemoveItem("user-2", itemID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	summary, err = service.RemoveItem("user-1", itemID)
	assert.NoError(t, err)
	assert.Empty(t, summary.CartItems)

	_, err = service.RemoveItem("user-1", itemID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartService_PriceIsSnapshottedAtAddTime(t *testing.T) {
	service, products, product := newCartFixture(t)

	summary, err := service.AddOrUpdate("user-1", product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.CartItems[0].Price)

	// A later price change does not touch the line's snapshot.
	product.SalesPrice = 150
	require.NoError(t, products.Update(product))

	summary, err = service.List("user-1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.CartItems[0].Price)
	assert.Equal(t, 100.0, summary.TotalPrice)
}
