package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurchaseOrderTransitions(t *testing.T) {
	assert.True(t, PODraft.CanTransitionTo(POPending))
	assert.True(t, POPending.CanTransitionTo(POConfirmed))
	assert.True(t, POOrdered.CanTransitionTo(POPartial))
	assert.True(t, POPartial.CanTransitionTo(POReceived))

	assert.False(t, PODraft.CanTransitionTo(POReceived))
	assert.False(t, POReceived.CanTransitionTo(POOrdered))
	assert.False(t, POCancelled.CanTransitionTo(POPending))

	// Self transition is always a no-op.
	assert.True(t, POOrdered.CanTransitionTo(POOrdered))
}

func TestSalesOrderTransitions(t *testing.T) {
	assert.True(t, SOPending.CanTransitionTo(SOConfirmed))
	assert.True(t, SOProcessing.CanTransitionTo(SOShipped))
	assert.True(t, SOShipped.CanTransitionTo(SODelivered))

	assert.False(t, SOPending.CanTransitionTo(SOShipped))
	assert.False(t, SOShipped.CanTransitionTo(SOCancelled))
	assert.False(t, SODelivered.CanTransitionTo(SOPending))
}

func TestProductIsLowStock(t *testing.T) {
	p := Product{CurrentStock: 5, ReorderLevel: 5}
	assert.True(t, p.IsLowStock())

	p.CurrentStock = 6
	assert.False(t, p.IsLowStock())
}
