package signup

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredData  = errors.New("nome e email são obrigatórios")
	ErrInvalidOption        = errors.New("opção de formulário inválida")
	ErrSubmissionInProgress = errors.New("envio do formulário já em andamento")
	ErrInsertFailed         = errors.New("falha ao gravar inscrição beta")
)

// SignupError carrega o código de API junto do erro base
type SignupError struct {
	Err     error
	Code    string
	Details string
}

func (e *SignupError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SignupError) Unwrap() error {
	return e.Err
}

func NewSignupError(baseErr error, code string, details string) *SignupError {
	return &SignupError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
