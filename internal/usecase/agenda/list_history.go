package agenda

import (
	"context"
	"time"

	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/httperr"
	"github.com/AgendaServicos01/agenda-api/internal/timezone"
)

type ListHistoryInput struct {
	UserID uint

	// Limites opcionais, YYYY-MM-DD. Qualquer um presente troca o corte
	// "antes de hoje" pelo período informado, sobre a coleção inteira.
	Start string
	End   string
}

type ListHistory struct {
	repo domain.Repository
	tz   string
}

func NewListHistory(repo domain.Repository, tz string) *ListHistory {
	return &ListHistory{repo: repo, tz: tz}
}

func (uc *ListHistory) Execute(
	ctx context.Context,
	in ListHistoryInput,
) (*ListResult, error) {

	if err := validRangeBound(in.Start); err != nil {
		return nil, err
	}
	if err := validRangeBound(in.End); err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointments(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	today := domain.Today(timezone.NowIn(uc.tz))
	items := domain.FilterHistory(aps, today, in.Start, in.End)

	return &ListResult{
		Appointments: items,
		Stats:        domain.Tally(items),
	}, nil
}

// A comparação de datas é lexicográfica, então os limites precisam estar no
// formato ISO para valerem.
func validRangeBound(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}
