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

type CreateAppointmentInput struct {
	UserID uint

	Client string
	Phone  string

	ServiceID uint

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit Dispatcher
	tz    string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
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

	// Status inicial centralizado: sempre pendente, ignorando qualquer
	// status vindo do chamador.
	ap := &models.Appointment{
		UserID:    in.UserID,
		Client:    strings.TrimSpace(in.Client),
		Phone:     phone,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		StatusID:  uint(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// O store é a fonte de verdade: devolve a cópia relida, não a otimista.
	fresh, err := uc.repo.GetAppointment(ctx, ap.ID, in.UserID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return fresh, nil
}
