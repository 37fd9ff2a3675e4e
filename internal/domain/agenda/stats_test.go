package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AgendaServicos01/agenda-api/internal/models"
)

func TestTallyEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, Tally(nil))
	assert.Equal(t, Stats{}, Tally([]models.Appointment{}))
}

func TestTallyCountsByStatus(t *testing.T) {
	aps := []models.Appointment{
		{StatusID: uint(StatusPending)},
		{StatusID: uint(StatusPending)},
		{StatusID: uint(StatusFinalized)},
		{StatusID: uint(StatusCancelled)},
		{StatusID: uint(StatusCancelled)},
		{StatusID: uint(StatusCancelled)},
	}

	got := Tally(aps)
	assert.Equal(t, Stats{Total: 6, Pending: 2, Finalized: 1, Cancelled: 3}, got)
	assert.Equal(t, got.Total, got.Pending+got.Finalized+got.Cancelled)
}

func TestTallyUnknownStatusOnlyInTotal(t *testing.T) {
	aps := []models.Appointment{
		{StatusID: uint(StatusPending)},
		{StatusID: 42},
		{StatusID: 0},
	}

	got := Tally(aps)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 1, got.Pending)
	assert.Equal(t, 0, got.Finalized)
	assert.Equal(t, 0, got.Cancelled)
}
