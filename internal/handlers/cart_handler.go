package handlers

import (
	"lapak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cart := router.Group("/cart", auth)
	cart.Get("/", h.HandleListCart)
	cart.Post("/", h.HandleAddOrUpdate)
	cart.Put("/:itemId", h.HandleSetQuantity)
	cart.Delete("/:itemId", h.HandleRemoveItem)
}

// HandleListCart returns the cart lines and total for the current user.
func (h *CartHandler) HandleListCart(c *fiber.Ctx) error {
	summary, err := h.service.List(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// AddCartItemRequest represents the body for adding or adjusting a cart
// line. Quantity is the desired target, not a delta; 0 removes the line.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// HandleAddOrUpdate adds a product to the cart or steps an existing line
// toward the requested quantity.
func (h *CartHandler) HandleAddOrUpdate(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	summary, err := h.service.AddOrUpdate(currentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// SetQuantityRequest represents the body for overwriting a line's quantity.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// HandleSetQuantity overwrites the quantity of one cart line.
func (h *CartHandler) HandleSetQuantity(c *fiber.Ctx) error {
	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	summary, err := h.service.SetQuantity(currentUserID(c), c.Params("itemId"), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleRemoveItem deletes one cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	summary, err := h.service.RemoveItem(currentUserID(c), c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
