package handlers

import (
	"log"

	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles the customer-facing order routes: checkout and reads
// of the user's own orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/checkout", auth, h.HandleCheckout)

	orders := router.Group("/orders", auth)
	orders.Get("/", h.HandleGetMyOrders)
	orders.Get("/:id", h.HandleGetMyOrder)
}

// HandleCheckout converts the current user's cart into a pending order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	order, err := h.service.Checkout(currentUserID(c))
	if err != nil {
		log.Printf("Checkout failed for user %s: %v", currentUserID(c), err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"orderId": order.ID,
	})
}

// HandleGetMyOrders lists the current user's orders.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetUserOrders(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetMyOrder retrieves one of the current user's orders.
func (h *OrderHandler) HandleGetMyOrder(c *fiber.Ctx) error {
	order, err := h.service.GetUserOrder(currentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
