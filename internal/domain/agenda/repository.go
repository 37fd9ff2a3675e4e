package agenda

import (
	"context"
	"time"

	"github.com/AgendaServicos01/agenda-api/internal/models"
)

// Repository é o colaborador de persistência: fonte única de verdade dos
// agendamentos e dos catálogos. Nenhum dado de agendamento é cacheado entre
// ações — só os catálogos, via refdata.
type Repository interface {
	// -------- Catálogos --------
	ListServices(ctx context.Context) ([]models.Service, error)

	ListStatuses(ctx context.Context) ([]models.Status, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (leitura) --------
	ListAppointments(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id string,
		userID uint,
	) (*models.Appointment, error)

	// -------- Appointment (escrita) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateAppointment grava o registro inteiro casando id+version.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SetAppointmentStatus sobrescreve apenas o status (e o carimbo do
	// desfecho), também sob checagem de versão.
	SetAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		status Status,
		at time.Time,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
		userID uint,
	) error
}
