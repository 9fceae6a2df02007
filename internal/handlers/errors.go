package handlers

import (
	"errors"
	"fmt"
	"log"

	"lapak/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the one JSON error body the API
// uses, picking the status code from the error taxonomy. Unrecognized
// errors become a 500 without leaking their text.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrEmptyCart),
		errors.Is(err, apperrors.ErrInsufficientStock),
		errors.Is(err, apperrors.ErrInvalidStatus):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrUnauthenticated):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		status = fiber.StatusForbidden
		message = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		status = fiber.StatusConflict
		message = err.Error()
	default:
		log.Printf("Internal error: %v", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// respondBadBody reports an unparseable request body.
func respondBadBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// respondValidationErrors reports per-field validation failures.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// currentUserID returns the authenticated user's ID placed in the request
// locals by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
