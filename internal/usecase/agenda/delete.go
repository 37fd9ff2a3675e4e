package agenda

import (
	"context"

	"github.com/AgendaServicos01/agenda-api/internal/audit"
	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Exclusão é remoção dura, permitida apenas enquanto pendente.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID, userID)
	if err != nil {
		return mapStoreErr(err)
	}

	if err := domain.CanDelete(domain.Status(ap.StatusID)); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID, userID); err != nil {
		return mapStoreErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: appointmentID,
	})

	return nil
}
