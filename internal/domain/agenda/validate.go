package agenda

import (
	"strings"
	"time"

	"github.com/AgendaServicos01/agenda-api/internal/httperr"
)

// Antecedência mínima entre o momento da marcação e o horário agendado.
const MinLeadTime = time.Hour

// ===============================
// Validations
// ===============================

type AppointmentInput struct {
	Client    string
	Phone     string
	ServiceID uint
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
}

// ValidateAppointment aplica as regras de negócio de um agendamento novo ou
// editado. Roda inteira antes de qualquer escrita; a primeira regra violada
// decide o erro.
func ValidateAppointment(in AppointmentInput, now time.Time) error {
	if strings.TrimSpace(in.Client) == "" {
		return httperr.ErrBusiness("empty_field")
	}

	if in.ServiceID == 0 || in.Date == "" || in.Time == "" {
		return httperr.ErrBusiness("missing_required_field")
	}

	if !ValidPhone(in.Phone) {
		return httperr.ErrBusiness("invalid_phone")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		now.Location(),
	)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	// Relógio de parede local: o horário marcado precisa estar a pelo menos
	// MinLeadTime de agora.
	if start.Before(now.Add(MinLeadTime)) {
		return httperr.ErrBusiness("past_date_time")
	}

	return nil
}
