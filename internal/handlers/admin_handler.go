package handlers

import (
	"fmt"
	"log"

	"lapak/internal/apperrors"
	"lapak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin console routes: order management and user
// management. Every route requires the admin role.
type AdminHandler struct {
	orderService *services.OrderService
	userService  *services.UserService
	validate     *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(orderService *services.OrderService, userService *services.UserService) *AdminHandler {
	return &AdminHandler{
		orderService: orderService,
		userService:  userService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	adminRoutes := router.Group("/admin", auth, admin)
	adminRoutes.Get("/orders", h.HandleGetOrders)
	adminRoutes.Put("/orders", h.HandleUpdateOrderStatus)
	adminRoutes.Delete("/orders", h.HandleDeleteOrder)
	adminRoutes.Get("/users", h.HandleGetUsers)
	adminRoutes.Delete("/users/:id", h.HandleDeleteUser)
}

// HandleGetOrders lists all orders.
func (h *AdminHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// UpdateStatusRequest represents the body for an order status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus moves the order named by the id query parameter
// to a new status and returns the updated order.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Query("id")
	if orderID == "" {
		return respondError(c, fmt.Errorf("%w: order id is required", apperrors.ErrInvalidInput))
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	order, err := h.orderService.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		log.Printf("Error updating status of order %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleDeleteOrder deletes the order named by the id query parameter,
// items included. Stock is not restored.
func (h *AdminHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID := c.Query("id")
	if orderID == "" {
		return respondError(c, fmt.Errorf("%w: order id is required", apperrors.ErrInvalidInput))
	}

	if err := h.orderService.DeleteOrder(orderID); err != nil {
		log.Printf("Error deleting order %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s deleted successfully", orderID),
	})
}

// HandleGetUsers lists all users.
func (h *AdminHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleDeleteUser deletes a user and their cart. Their orders remain.
func (h *AdminHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.userService.DeleteUser(userID); err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("User %s deleted successfully", userID),
	})
}
