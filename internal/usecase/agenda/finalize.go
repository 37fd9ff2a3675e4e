package agenda

import (
	"context"

	"github.com/AgendaServicos01/agenda-api/internal/audit"
	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/models"
	"github.com/AgendaServicos01/agenda-api/internal/timezone"
)

type FinalizeAppointment struct {
	repo  domain.Repository
	audit Dispatcher
	tz    string
}

func NewFinalizeAppointment(
	repo domain.Repository,
	audit Dispatcher,
	tz string,
) *FinalizeAppointment {
	return &FinalizeAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute relê o registro imediatamente antes de escrever (read-modify-
// write) e sobrescreve apenas o status. Se o status já saiu de pendente
// entre a leitura e a escrita, a ação falha em vez de atropelar o outro
// desfecho.
func (uc *FinalizeAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Finalize(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SetAppointmentStatus(ctx, ap, domain.StatusFinalized, now); err != nil {
		return nil, mapStoreErr(err)
	}

	fresh, err := uc.repo.GetAppointment(ctx, appointmentID, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_finalized",
		Entity:   "appointment",
		EntityID: appointmentID,
	})

	return fresh, nil
}
