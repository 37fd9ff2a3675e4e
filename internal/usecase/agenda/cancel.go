package agenda

import (
	"context"

	"github.com/AgendaServicos01/agenda-api/internal/audit"
	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/models"
	"github.com/AgendaServicos01/agenda-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit Dispatcher
	tz    string
}

func NewCancelAppointment(
	repo domain.Repository,
	audit Dispatcher,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Mesma disciplina do finalize: relê, valida que ainda está pendente e
// escreve só o status.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SetAppointmentStatus(ctx, ap, domain.StatusCancelled, now); err != nil {
		return nil, mapStoreErr(err)
	}

	fresh, err := uc.repo.GetAppointment(ctx, appointmentID, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: appointmentID,
	})

	return fresh, nil
}
