package agenda

import (
	"time"

	"github.com/AgendaServicos01/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Finalize(ap *models.Appointment, now time.Time) error {
	if err := CanFinalize(Status(ap.StatusID)); err != nil {
		return err
	}

	ap.StatusID = uint(StatusFinalized)
	ap.FinalizedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.StatusID)); err != nil {
		return err
	}

	ap.StatusID = uint(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
