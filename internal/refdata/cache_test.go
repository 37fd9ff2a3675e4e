package refdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/models"
)

type catalogRepo struct {
	services []models.Service
	statuses []models.Status

	servicesErr error
	statusesErr error
}

func (r *catalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return r.services, r.servicesErr
}

func (r *catalogRepo) ListStatuses(ctx context.Context) ([]models.Status, error) {
	return r.statuses, r.statusesErr
}

func (r *catalogRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	return nil, errors.New("not implemented")
}

func (r *catalogRepo) ListAppointments(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (r *catalogRepo) GetAppointment(ctx context.Context, id string, userID uint) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (r *catalogRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return errors.New("not implemented")
}

func (r *catalogRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return errors.New("not implemented")
}

func (r *catalogRepo) SetAppointmentStatus(ctx context.Context, ap *models.Appointment, status domain.Status, at time.Time) error {
	return errors.New("not implemented")
}

func (r *catalogRepo) DeleteAppointment(ctx context.Context, id string, userID uint) error {
	return errors.New("not implemented")
}

var _ domain.Repository = (*catalogRepo)(nil)

func seededRepo() *catalogRepo {
	return &catalogRepo{
		services: []models.Service{
			{ID: 1, Name: "Corte", Price: 40},
			{ID: 2, Name: "Barba", Price: 25},
		},
		statuses: []models.Status{
			{ID: 1, Name: "Pendente", Color: "#ffc107"},
			{ID: 2, Name: "Finalizado", Color: "#28a745"},
			{ID: 3, Name: "Cancelado", Color: "#dc3545"},
		},
	}
}

// Sem redis configurado o warm vai direto ao repositório.
func TestWarmLoadsBothCatalogs(t *testing.T) {
	cache := New(seededRepo(), nil)

	require.NoError(t, cache.Warm(context.Background()))

	assert.Len(t, cache.Services(), 2)
	assert.Len(t, cache.Statuses(), 3)
}

func TestWarmFailsWhenEitherCatalogFails(t *testing.T) {
	repo := seededRepo()
	repo.statusesErr = errors.New("db down")

	cache := New(repo, nil)
	err := cache.Warm(context.Background())
	require.Error(t, err)

	// Nada foi publicado: as consultas continuam nos fallbacks.
	assert.Empty(t, cache.Services())
	assert.Equal(t, "Status não encontrado", cache.StatusName(1))
}

func TestLookupsAfterWarm(t *testing.T) {
	cache := New(seededRepo(), nil)
	require.NoError(t, cache.Warm(context.Background()))

	assert.Equal(t, "Corte", cache.ServiceName(1))
	assert.Equal(t, 25.0, cache.ServicePrice(2))
	assert.Equal(t, "Finalizado", cache.StatusName(2))
	assert.Equal(t, "#dc3545", cache.StatusColor(3))
}

func TestLookupFallbacks(t *testing.T) {
	cache := New(seededRepo(), nil)
	require.NoError(t, cache.Warm(context.Background()))

	assert.Equal(t, "Serviço não encontrado", cache.ServiceName(99))
	assert.Equal(t, 0.0, cache.ServicePrice(99))
	assert.Equal(t, "Status não encontrado", cache.StatusName(99))
	assert.Equal(t, "#666", cache.StatusColor(99))
}
