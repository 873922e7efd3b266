package dashboard

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTab          = errors.New("aba desconhecida")
	ErrInvalidStatus       = errors.New("status inválido")
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrNotFound            = errors.New("item não encontrado")
	ErrDomainUnavailable   = errors.New("domínio indisponível para seleção")
	ErrNothingSelected     = errors.New("nenhum item selecionado")
	ErrInvalidCSV          = errors.New("arquivo CSV inválido")
	ErrScheduleFailed      = errors.New("falha ao agendar tarefa simulada")
)

// DashboardError carrega o código de API junto do erro base
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(baseErr error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
