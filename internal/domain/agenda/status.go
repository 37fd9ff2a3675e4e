package agenda

import "github.com/AgendaServicos01/agenda-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status uint

const (
	StatusPending   Status = 1
	StatusFinalized Status = 2
	StatusCancelled Status = 3
)

// Known informa se o id pertence ao catálogo de status.
func (s Status) Known() bool {
	return s == StatusPending || s == StatusFinalized || s == StatusCancelled
}

// Terminal: finalizado ou cancelado. Saída de pendente é via única.
func (s Status) Terminal() bool {
	return s == StatusFinalized || s == StatusCancelled
}

// ===============================
// Transition Guard
// ===============================

// CanTransition valida a troca de status pedida numa edição. A única
// transição proibida é a regressão terminal -> pendente.
func CanTransition(current, next Status) error {
	if current.Terminal() && next == StatusPending {
		return httperr.ErrBusiness("illegal_transition")
	}
	return nil
}

// CanFinalize define se um agendamento pode ser finalizado
func CanFinalize(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("illegal_transition")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("illegal_transition")
	}
	return nil
}

// CanDelete define se um agendamento pode ser excluído
func CanDelete(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("illegal_deletion")
	}
	return nil
}

// InitialStatus: todo agendamento nasce pendente, independente do que o
// chamador mandar.
func InitialStatus() Status {
	return StatusPending
}
