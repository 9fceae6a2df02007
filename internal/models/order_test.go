package models_test

import (
	"testing"

	"lapak/internal/apperrors"
	"lapak/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	valid := []string{"pending", "confirmed", "accepted", "shipped", "delivered", "cancelled"}
	for _, raw := range valid {
		status, err := models.ParseOrderStatus(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, models.OrderStatus(raw), status)
	}

	for _, raw := range []string{"", "processing", "PENDING", "returned", "teleported"} {
		_, err := models.ParseOrderStatus(raw)
		assert.Error(t, err, raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.OrderStatusPending, models.OrderStatusConfirmed, true},
		{models.OrderStatusPending, models.OrderStatusAccepted, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusShipped, false},
		{models.OrderStatusPending, models.OrderStatusDelivered, false},
		{models.OrderStatusConfirmed, models.OrderStatusShipped, true},
		{models.OrderStatusConfirmed, models.OrderStatusCancelled, false},
		{models.OrderStatusAccepted, models.OrderStatusShipped, true},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, false},
		// Delivered and cancelled are terminal.
		{models.OrderStatusDelivered, models.OrderStatusPending, false},
		{models.OrderStatusDelivered, models.OrderStatusShipped, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
		{models.OrderStatusCancelled, models.OrderStatusConfirmed, false},
		// A state never transitions to itself.
		{models.OrderStatusPending, models.OrderStatusPending, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}
