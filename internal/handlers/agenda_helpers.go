package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/dto"
	"github.com/AgendaServicos01/agenda-api/internal/httperr"
	"github.com/AgendaServicos01/agenda-api/internal/models"
	ucAgenda "github.com/AgendaServicos01/agenda-api/internal/usecase/agenda"
)

// --------------------------------------------------
// DTO
// --------------------------------------------------

// Os nomes, preços e cores vêm do cache de referência da sessão; id fora
// do catálogo cai nos fallbacks do refdata.
func (h *AppointmentHandler) toDTO(ap *models.Appointment) dto.AppointmentDTO {
	return dto.AppointmentDTO{
		ID:             ap.ID,
		Client:         ap.Client,
		Phone:          ap.Phone,
		PhoneFormatted: domain.MaskPhone(ap.Phone),
		ServiceID:      ap.ServiceID,
		ServiceName:    h.refdata.ServiceName(ap.ServiceID),
		ServicePrice:   h.refdata.ServicePrice(ap.ServiceID),
		Date:           ap.Date,
		Time:           ap.Time,
		StatusID:       ap.StatusID,
		StatusName:     h.refdata.StatusName(ap.StatusID),
		StatusColor:    h.refdata.StatusColor(ap.StatusID),
		Version:        ap.Version,
	}
}

func (h *AppointmentHandler) toListDTO(res *ucAgenda.ListResult) dto.AgendaListDTO {
	items := make([]dto.AppointmentDTO, 0, len(res.Appointments))
	for i := range res.Appointments {
		items = append(items, h.toDTO(&res.Appointments[i]))
	}

	return dto.AgendaListDTO{
		Appointments: items,
		Stats:        res.Stats,
	}
}

// --------------------------------------------------
// Erros
// --------------------------------------------------

var businessMessages = map[string]string{
	"empty_field":            "Preencha o nome do cliente.",
	"missing_required_field": "Preencha todos os campos obrigatórios.",
	"invalid_phone":          "Telefone inválido (10 ou 11 dígitos).",
	"invalid_date_or_time":   "Data ou hora inválida.",
	"invalid_date":           "Data inválida.",
	"past_date_time":         "Não é possível agendar para uma data/hora anterior à atual.",
	"invalid_status":         "Status inválido.",
	"service_not_found":      "Serviço não encontrado.",
	"illegal_transition":     "Não é possível alterar o status para pendente após ser finalizado ou cancelado.",
	"illegal_deletion":       "Não é possível excluir agendamentos finalizados ou cancelados.",
}

func writeInvalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}

// Erros de validação e de guarda viram 400 antes de qualquer escrita;
// registro sumido vira 404, escrita concorrente 409 e o resto 500.
func writeAgendaError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		switch be.Code {
		case "not_found":
			httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
		case "version_conflict":
			httperr.Conflict(c, be.Code, "O agendamento foi alterado por outra ação. Recarregue e tente novamente.")
		default:
			msg := businessMessages[be.Code]
			if msg == "" {
				msg = "Operação não permitida."
			}
			httperr.BadRequest(c, be.Code, msg)
		}
		return
	}

	httperr.Internal(c, "store_unavailable", "Erro ao acessar o servidor. Tente novamente.")
}
