package dto

import "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"

type AppointmentDTO struct {
	ID             string  `json:"id"`
	Client         string  `json:"client"`
	Phone          string  `json:"phone"`
	PhoneFormatted string  `json:"phone_formatted"`
	ServiceID      uint    `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	ServicePrice   float64 `json:"service_price"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	StatusID       uint    `json:"status_id"`
	StatusName     string  `json:"status_name"`
	StatusColor    string  `json:"status_color"`
	Version        uint    `json:"version"`
}

type AgendaListDTO struct {
	Appointments []AppointmentDTO `json:"appointments"`
	Stats        agenda.Stats     `json:"stats"`
}
