package agenda

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AgendaServicos01/agenda-api/internal/audit"
	"github.com/AgendaServicos01/agenda-api/internal/httperr"
)

// Dispatcher é o que os casos de uso esperam da auditoria.
type Dispatcher interface {
	Dispatch(ev audit.Event)
}

// mapStoreErr traduz o "sumiu entre leitura e escrita" do repositório para o
// código de negócio; o resto sobe como indisponibilidade do store.
func mapStoreErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness("not_found")
	}
	return err
}
