package agenda

import (
	"context"

	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/timezone"
)

type ListFuture struct {
	repo domain.Repository
	tz   string
}

func NewListFuture(repo domain.Repository, tz string) *ListFuture {
	return &ListFuture{repo: repo, tz: tz}
}

func (uc *ListFuture) Execute(
	ctx context.Context,
	userID uint,
) (*ListResult, error) {

	aps, err := uc.repo.ListAppointments(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := domain.Today(timezone.NowIn(uc.tz))
	items := domain.FilterFuture(aps, today)

	return &ListResult{
		Appointments: items,
		Stats:        domain.Tally(items),
	}, nil
}
