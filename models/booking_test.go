package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BookingPending.CanTransitionTo(BookingConfirmed))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingInProgress))
	assert.True(t, BookingInProgress.CanTransitionTo(BookingCompleted))

	// Cancellation from any non-terminal state
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingInProgress.CanTransitionTo(BookingCancelled))

	// No skipping or backward moves
	assert.False(t, BookingPending.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingPending))

	// Terminal states stay terminal
	assert.False(t, BookingCompleted.CanTransitionTo(BookingCancelled))
	assert.False(t, BookingCancelled.CanTransitionTo(BookingPending))

	// Self-transition is a no-op, not a violation
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingConfirmed))
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.True(t, BookingCompleted.IsTerminal())
	assert.True(t, BookingCancelled.IsTerminal())
	assert.False(t, BookingPending.IsTerminal())
	assert.False(t, BookingInProgress.IsTerminal())
}

func TestBookingStatusIsValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, BookingStatus("DONE").IsValid())
	assert.False(t, BookingStatus("pending").IsValid())
}

func TestNullableWorkerIDDistinguishesNullFromAbsent(t *testing.T) {
	var req UpdateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"worker_id":5}`), &req))
	assert.True(t, req.WorkerID.Set)
	require.NotNil(t, req.WorkerID.Value)
	assert.Equal(t, uint(5), *req.WorkerID.Value)

	req = UpdateBookingRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"worker_id":null}`), &req))
	assert.True(t, req.WorkerID.Set)
	assert.Nil(t, req.WorkerID.Value)

	req = UpdateBookingRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"status":"CONFIRMED"}`), &req))
	assert.False(t, req.WorkerID.Set)
}

func TestWorkerCoversServiceType(t *testing.T) {
	worker := Worker{ServiceTypes: []ServiceType{ServiceHomeCooking, ServiceEventCooking}}
	assert.True(t, worker.CoversServiceType(ServiceHomeCooking))
	assert.False(t, worker.CoversServiceType(ServiceSeasonalConcierge))

	empty := Worker{}
	assert.False(t, empty.CoversServiceType(ServiceHomeCooking))
}
