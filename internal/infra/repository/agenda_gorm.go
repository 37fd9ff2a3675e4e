package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/httperr"
	"github.com/AgendaServicos01/agenda-api/internal/models"
)

type AgendaGormRepository struct {
	db *gorm.DB
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{db: db}
}

// --------------------------------------------------
// Catálogos
// --------------------------------------------------

func (r *AgendaGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *AgendaGormRepository) ListStatuses(
	ctx context.Context,
) ([]models.Status, error) {

	var statuses []models.Status
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *AgendaGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment (leitura)
// --------------------------------------------------

func (r *AgendaGormRepository) ListAppointments(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AgendaGormRepository) GetAppointment(
	ctx context.Context,
	id string,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (escrita)
// --------------------------------------------------

// O id opaco é atribuído aqui, nunca pelo chamador.
func (r *AgendaGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ap.ID = uuid.NewString()
	ap.Version = 0
	return r.db.WithContext(ctx).Create(ap).Error
}

// UpdateAppointment grava o registro casando id+version. Zero linhas
// afetadas significa ou registro sumido (not found) ou escrita concorrente
// (version_conflict); a releitura decide qual.
func (r *AgendaGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND user_id = ? AND version = ?", ap.ID, ap.UserID, ap.Version).
		Updates(map[string]any{
			"client":       ap.Client,
			"phone":        ap.Phone,
			"service_id":   ap.ServiceID,
			"date":         ap.Date,
			"time":         ap.Time,
			"status_id":    ap.StatusID,
			"finalized_at": ap.FinalizedAt,
			"cancelled_at": ap.CancelledAt,
			"version":      ap.Version + 1,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.staleWriteError(ctx, ap.ID, ap.UserID)
	}

	ap.Version++
	return nil
}

func (r *AgendaGormRepository) SetAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	status domain.Status,
	at time.Time,
) error {

	fields := map[string]any{
		"status_id": uint(status),
		"version":   ap.Version + 1,
	}
	switch status {
	case domain.StatusFinalized:
		fields["finalized_at"] = at
	case domain.StatusCancelled:
		fields["cancelled_at"] = at
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND user_id = ? AND version = ?", ap.ID, ap.UserID, ap.Version).
		Updates(fields)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.staleWriteError(ctx, ap.ID, ap.UserID)
	}

	ap.Version++
	return nil
}

func (r *AgendaGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
	userID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Appointment{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AgendaGormRepository) staleWriteError(
	ctx context.Context,
	id string,
	userID uint,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return httperr.ErrBusiness("version_conflict")
}

// Compile-time check
var _ domain.Repository = (*AgendaGormRepository)(nil)
