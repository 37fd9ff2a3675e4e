package agenda

import "github.com/AgendaServicos01/agenda-api/internal/models"

// ===============================
// Estatísticas
// ===============================

type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Finalized int `json:"finalized"`
	Cancelled int `json:"cancelled"`
}

// Tally conta os agendamentos por status em uma passada. Status fora do
// catálogo entram só no total.
func Tally(aps []models.Appointment) Stats {
	st := Stats{Total: len(aps)}

	for _, ap := range aps {
		switch Status(ap.StatusID) {
		case StatusPending:
			st.Pending++
		case StatusFinalized:
			st.Finalized++
		case StatusCancelled:
			st.Cancelled++
		}
	}

	return st
}
