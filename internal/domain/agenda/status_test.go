package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgendaServicos01/agenda-api/internal/httperr"
	"github.com/AgendaServicos01/agenda-api/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		next    Status
		allowed bool
	}{
		{"pending stays pending", StatusPending, StatusPending, true},
		{"pending to finalized", StatusPending, StatusFinalized, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"finalized back to pending", StatusFinalized, StatusPending, false},
		{"cancelled back to pending", StatusCancelled, StatusPending, false},
		{"finalized stays finalized", StatusFinalized, StatusFinalized, true},
		{"cancelled stays cancelled", StatusCancelled, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.current, tt.next)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "illegal_transition"))
			}
		})
	}
}

func TestCanFinalizeAndCancelRequirePending(t *testing.T) {
	assert.NoError(t, CanFinalize(StatusPending))
	assert.NoError(t, CanCancel(StatusPending))

	for _, st := range []Status{StatusFinalized, StatusCancelled} {
		assert.True(t, httperr.IsBusiness(CanFinalize(st), "illegal_transition"))
		assert.True(t, httperr.IsBusiness(CanCancel(st), "illegal_transition"))
	}
}

func TestCanDeleteOnlyPending(t *testing.T) {
	assert.NoError(t, CanDelete(StatusPending))

	for _, st := range []Status{StatusFinalized, StatusCancelled} {
		assert.True(t, httperr.IsBusiness(CanDelete(st), "illegal_deletion"))
	}
}

func TestFinalizeAction(t *testing.T) {
	now := time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC)
	ap := &models.Appointment{StatusID: uint(StatusPending)}

	require.NoError(t, Finalize(ap, now))
	assert.Equal(t, uint(StatusFinalized), ap.StatusID)
	require.NotNil(t, ap.FinalizedAt)
	assert.Equal(t, now, *ap.FinalizedAt)

	// Já finalizado: segunda finalização reprova.
	err := Finalize(ap, now)
	assert.True(t, httperr.IsBusiness(err, "illegal_transition"))
}

func TestCancelAction(t *testing.T) {
	now := time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC)
	ap := &models.Appointment{StatusID: uint(StatusPending)}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, uint(StatusCancelled), ap.StatusID)
	require.NotNil(t, ap.CancelledAt)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "illegal_transition"))
}

func TestStatusKnown(t *testing.T) {
	assert.True(t, StatusPending.Known())
	assert.True(t, StatusFinalized.Known())
	assert.True(t, StatusCancelled.Known())
	assert.False(t, Status(0).Known())
	assert.False(t, Status(9).Known())
}
