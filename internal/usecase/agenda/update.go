package agenda

import (
	"context"
	"strings"

	"github.com/AgendaServicos01/agenda-api/internal/audit"
	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/httperr"
	"github.com/AgendaServicos01/agenda-api/internal/models"
	"github.com/AgendaServicos01/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	UserID        uint
	AppointmentID string

	Client string
	Phone  string

	ServiceID uint

	Date string
	Time string

	// StatusID zero mantém o status atual.
	StatusID uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit Dispatcher
	tz    string
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit Dispatcher,
	tz string,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	now := timezone.NowIn(uc.tz)
	phone := domain.NormalizePhone(in.Phone)

	if err := domain.ValidateAppointment(domain.AppointmentInput{
		Client:    in.Client,
		Phone:     phone,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
	}, now); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// O guard compara o status armazenado com o pedido antes de submeter a
	// edição; a única regressão proibida é terminal -> pendente.
	current, err := uc.repo.GetAppointment(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	requested := domain.Status(current.StatusID)
	if in.StatusID != 0 {
		requested = domain.Status(in.StatusID)
		if !requested.Known() {
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	if err := domain.CanTransition(domain.Status(current.StatusID), requested); err != nil {
		return nil, err
	}

	transitioned := requested != domain.Status(current.StatusID)

	current.Client = strings.TrimSpace(in.Client)
	current.Phone = phone
	current.ServiceID = in.ServiceID
	current.Date = in.Date
	current.Time = in.Time
	current.StatusID = uint(requested)

	if transitioned {
		switch requested {
		case domain.StatusFinalized:
			current.FinalizedAt = &now
		case domain.StatusCancelled:
			current.CancelledAt = &now
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, current); err != nil {
		return nil, mapStoreErr(err)
	}

	fresh, err := uc.repo.GetAppointment(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: in.AppointmentID,
	})

	return fresh, nil
}
