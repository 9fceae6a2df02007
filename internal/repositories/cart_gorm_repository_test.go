package repositories_test

import (
	"testing"

	"lapak/internal/apperrors"
	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMCartRepository_GetOrCreateByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	// First read creates the cart.
	cart, err := repo.GetOrCreateByUserID("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Empty(t, cart.Items)

	// Second read returns the same cart.
	again, err := repo.GetOrCreateByUserID("user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestGORMCartRepository_ItemLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	product := seedProduct(t, db, "Green Tea", 100, 10)
	cart, err := repo.GetOrCreateByUserID("user-1")
	require.NoError(t, err)

	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  1,
		Price:     product.SalesPrice,
	}
	require.NoError(t, repo.CreateItem(item))
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.AddedAt.IsZero())

	// The line is reachable by cart+product and by its own ID.
	found, err := repo.FindItem(cart.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	got, err := repo.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)

	// Reads preload the product on each line.
	cart, err = repo.GetOrCreateByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Green Tea", cart.Items[0].Product.Name)

	// Quantity changes persist.
	got.Quantity = 4
	require.NoError(t, repo.SaveItem(got))
	got, err = repo.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)

	// Deleting the line empties the cart.
	require.NoError(t, repo.DeleteItem(item.ID))
	cart, err = repo.GetOrCreateByUserID("user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	err = repo.DeleteItem(item.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.GetItem(item.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindItem(cart.ID, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGORMCartRepository_DeleteByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMCartRepository(db)

	product := seedProduct(t, db, "Green Tea", 100, 10)
	cart, err := repo.GetOrCreateByUserID("user-1")
	require.NoError(t, err)
	require.NoError(t, repo.CreateItem(&models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  2,
		Price:     product.SalesPrice,
	}))

	require.NoError(t, repo.DeleteByUserID("user-1"))

	var cartCount, itemCount int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", "user-1").Count(&cartCount).Error)
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount).Error)
	assert.Zero(t, cartCount)
	assert.Zero(t, itemCount)

	// Deleting an absent cart is a no-op.
	assert.NoError(t, repo.DeleteByUserID("user-2"))
}
