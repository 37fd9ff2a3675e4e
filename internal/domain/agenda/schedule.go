package agenda

import (
	"sort"
	"time"

	"github.com/AgendaServicos01/agenda-api/internal/models"
)

// ===============================
// Classificação temporal
// ===============================

// Datas ISO (YYYY-MM-DD) comparam corretamente como strings, então os
// cortes abaixo são todos lexicográficos.

// Today devolve a data de "agora" truncada para o dia.
func Today(now time.Time) string {
	return now.Format("2006-01-02")
}

// FilterToday: agendamentos do dia, ordenados por horário crescente.
func FilterToday(aps []models.Appointment, today string) []models.Appointment {
	out := make([]models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if ap.Date == today {
			out = append(out, ap)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// FilterFuture: estritamente depois de hoje, mais próximos primeiro.
func FilterFuture(aps []models.Appointment, today string) []models.Appointment {
	out := make([]models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if ap.Date > today {
			out = append(out, ap)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})
	return out
}

// FilterHistory: sem filtro explícito, o histórico é o passado estrito.
// Com start e/ou end, o corte "antes de hoje" deixa de valer e o período
// [start, end] (limites inclusivos, cada um opcional) é aplicado sobre a
// coleção inteira — pode incluir hoje e futuro.
func FilterHistory(aps []models.Appointment, today, start, end string) []models.Appointment {
	out := make([]models.Appointment, 0, len(aps))

	for _, ap := range aps {
		if start == "" && end == "" {
			if ap.Date < today {
				out = append(out, ap)
			}
			continue
		}

		if start != "" && ap.Date < start {
			continue
		}
		if end != "" && ap.Date > end {
			continue
		}
		out = append(out, ap)
	}

	// Mais recentes primeiro.
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) > sortKey(out[j])
	})
	return out
}

func sortKey(ap models.Appointment) string {
	return ap.Date + "T" + ap.Time
}
