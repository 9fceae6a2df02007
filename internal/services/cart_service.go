package services

import (
	"errors"
	"fmt"

	"lapak/internal/apperrors"
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// CartService handles business logic for the per-user cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// List returns the user's cart lines with product summaries and the current
// total. A user without a cart gets an empty one created, so this never
// fails for a missing cart.
func (s *CartService) List(userID string) (*models.CartSummary, error) {
	return s.summarize(userID)
}

// AddOrUpdate moves the cart line for a product toward the desired quantity.
//
// Without an existing line, a positive desired quantity inserts the product
// with quantity 1 (the first add always starts at one, whatever was asked
// for). With an existing line, the quantity steps by exactly one toward the
// desired value per call; stepping below 1, or a desired quantity of 0,
// deletes the line. Zero-quantity rows are never persisted.
func (s *CartService) AddOrUpdate(userID, productID string, desiredQuantity int) (*models.CartSummary, error) {
	if desiredQuantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrInvalidInput)
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.FindItem(cart.ID, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if desiredQuantity == 0 {
			// Nothing to remove.
			return s.summarize(userID)
		}
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		newItem := &models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  1,
			Price:     product.SalesPrice,
		}
		if err := s.cartRepo.CreateItem(newItem); err != nil {
			return nil, err
		}
		return s.summarize(userID)
	}

	switch {
	case desiredQuantity == 0:
		if err := s.cartRepo.DeleteItem(item.ID); err != nil {
			return nil, err
		}
	case item.Quantity < desiredQuantity:
		item.Quantity++
		if err := s.cartRepo.SaveItem(item); err != nil {
			return nil, err
		}
	case item.Quantity > desiredQuantity:
		item.Quantity--
		if item.Quantity < 1 {
			if err := s.cartRepo.DeleteItem(item.ID); err != nil {
				return nil, err
			}
		} else if err := s.cartRepo.SaveItem(item); err != nil {
			return nil, err
		}
	default:
		// Already at the desired quantity.
	}

	return s.summarize(userID)
}

// SetQuantity overwrites the quantity of one cart line. Quantities below 1
// are rejected; use AddOrUpdate with a desired quantity of 0 to remove a
// line instead.
func (s *CartService) SetQuantity(userID, itemID string, quantity int) (*models.CartSummary, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrInvalidInput)
	}

	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.cartRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return s.summarize(userID)
}

// RemoveItem deletes one cart line.
func (s *CartService) RemoveItem(userID, itemID string) (*models.CartSummary, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.DeleteItem(item.ID); err != nil {
		return nil, err
	}
	return s.summarize(userID)
}

// ownedItem fetches a cart line and verifies it belongs to the caller's
// cart. Lines in other users' carts read as not found.
func (s *CartService) ownedItem(userID, itemID string) (*models.CartItem, error) {
	item, err := s.cartRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	if item.CartID != cart.ID {
		return nil, fmt.Errorf("%w: cart item %s", apperrors.ErrNotFound, itemID)
	}
	return item, nil
}

// summarize re-reads the cart and builds the response view.
func (s *CartService) summarize(userID string) (*models.CartSummary, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	summary := cart.Summarize()
	return &summary, nil
}
