package agenda

import (
	"context"

	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/models"
	"github.com/AgendaServicos01/agenda-api/internal/timezone"
)

// ListResult é o retorno comum das listagens: a coleção classificada mais o
// agregado de contagens por status dessa mesma coleção.
type ListResult struct {
	Appointments []models.Appointment
	Stats        domain.Stats
}

type ListToday struct {
	repo domain.Repository
	tz   string
}

func NewListToday(repo domain.Repository, tz string) *ListToday {
	return &ListToday{repo: repo, tz: tz}
}

func (uc *ListToday) Execute(
	ctx context.Context,
	userID uint,
) (*ListResult, error) {

	aps, err := uc.repo.ListAppointments(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := domain.Today(timezone.NowIn(uc.tz))
	items := domain.FilterToday(aps, today)

	return &ListResult{
		Appointments: items,
		Stats:        domain.Tally(items),
	}, nil
}
