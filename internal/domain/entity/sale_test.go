package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	// Forward path.
	assert.True(t, CanTransition(SaleStatusPending, SaleStatusProcessing))
	assert.True(t, CanTransition(SaleStatusProcessing, SaleStatusShipped))
	assert.True(t, CanTransition(SaleStatusShipped, SaleStatusDelivered))

	// Cancellation is possible until delivery.
	assert.True(t, CanTransition(SaleStatusPending, SaleStatusCancelled))
	assert.True(t, CanTransition(SaleStatusProcessing, SaleStatusCancelled))
	assert.True(t, CanTransition(SaleStatusShipped, SaleStatusCancelled))
	assert.False(t, CanTransition(SaleStatusDelivered, SaleStatusCancelled))

	// Delivered is terminal.
	assert.False(t, CanTransition(SaleStatusDelivered, SaleStatusProcessing))
	assert.False(t, CanTransition(SaleStatusDelivered, SaleStatusPending))

	// Reopening is the only way out of cancelled.
	assert.True(t, CanTransition(SaleStatusCancelled, SaleStatusPending))
	assert.False(t, CanTransition(SaleStatusCancelled, SaleStatusProcessing))

	// No skipping ahead.
	assert.False(t, CanTransition(SaleStatusPending, SaleStatusDelivered))
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []SaleStatus{SaleStatusProcessing, SaleStatusCancelled}, NextStatuses(SaleStatusPending))
	assert.Equal(t, []SaleStatus{SaleStatusPending}, NextStatuses(SaleStatusCancelled))
	assert.Empty(t, NextStatuses(SaleStatusDelivered))
}

func TestUnitPrice(t *testing.T) {
	s := &Sale{Quantity: 4, TotalValue: 1000}
	assert.InDelta(t, 250.0, s.UnitPrice(), 1e-9)

	empty := &Sale{Quantity: 0, TotalValue: 100}
	assert.Zero(t, empty.UnitPrice())
}
