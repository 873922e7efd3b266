package session

import "errors"

var (
	ErrInvalidToken    = errors.New("token de sessão inválido")
	ErrSessionNotFound = errors.New("sessão não encontrada ou expirada")
)
