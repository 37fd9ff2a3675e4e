package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgendaServicos01/agenda-api/internal/httperr"
)

func validInput(now time.Time) AppointmentInput {
	start := now.Add(2 * time.Hour)
	return AppointmentInput{
		Client:    "Maria Silva",
		Phone:     "11987654321",
		ServiceID: 1,
		Date:      start.Format("2006-01-02"),
		Time:      start.Format("15:04"),
	}
}

func TestValidateAppointmentOK(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	require.NoError(t, ValidateAppointment(validInput(now), now))
}

func TestValidateAppointmentEmptyClient(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

	for _, client := range []string{"", "   ", "\t\n"} {
		in := validInput(now)
		in.Client = client
		err := ValidateAppointment(in, now)
		assert.True(t, httperr.IsBusiness(err, "empty_field"), "client=%q", client)
	}
}

func TestValidateAppointmentMissingFields(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		mutate func(*AppointmentInput)
	}{
		{"no service", func(in *AppointmentInput) { in.ServiceID = 0 }},
		{"no date", func(in *AppointmentInput) { in.Date = "" }},
		{"no time", func(in *AppointmentInput) { in.Time = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(now)
			tt.mutate(&in)
			err := ValidateAppointment(in, now)
			assert.True(t, httperr.IsBusiness(err, "missing_required_field"))
		})
	}
}

func TestValidateAppointmentInvalidPhone(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

	in := validInput(now)
	in.Phone = "11987"
	err := ValidateAppointment(in, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
}

func TestValidateAppointmentMalformedDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

	in := validInput(now)
	in.Date = "10/06/2024"
	err := ValidateAppointment(in, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

// Antecedência mínima de 1 hora: agora+30min reprova, agora+90min passa.
func TestValidateAppointmentLeadTime(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

	in := validInput(now)
	tooSoon := now.Add(30 * time.Minute)
	in.Date = tooSoon.Format("2006-01-02")
	in.Time = tooSoon.Format("15:04")
	err := ValidateAppointment(in, now)
	assert.True(t, httperr.IsBusiness(err, "past_date_time"))

	in = validInput(now)
	ok := now.Add(90 * time.Minute)
	in.Date = ok.Format("2006-01-02")
	in.Time = ok.Format("15:04")
	assert.NoError(t, ValidateAppointment(in, now))
}

func TestValidateAppointmentExactlyOneHour(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

	// No limite exato a marcação é aceita ("em ou depois de agora+1h").
	in := validInput(now)
	at := now.Add(time.Hour)
	in.Date = at.Format("2006-01-02")
	in.Time = at.Format("15:04")
	assert.NoError(t, ValidateAppointment(in, now))
}

func TestValidateAppointmentPastDate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)

	in := validInput(now)
	in.Date = "2024-06-09"
	in.Time = "18:00"
	err := ValidateAppointment(in, now)
	assert.True(t, httperr.IsBusiness(err, "past_date_time"))
}
