package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors. Messages are client-facing and therefore in Portuguese,
// matching the panel front end.
var (
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "dados inválidos")
	ErrMissingToken       = New("MISSING_TOKEN", http.StatusUnauthorized, "token não informado")
	ErrInvalidToken       = New("INVALID_TOKEN", http.StatusUnauthorized, "token inválido")
	ErrExpiredToken       = New("EXPIRED_TOKEN", http.StatusUnauthorized, "token expirado")
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "credenciais inválidas")
	ErrInactiveAccount    = New("ACCOUNT_INACTIVE", http.StatusForbidden, "conta desativada")
	ErrForbidden          = New("FORBIDDEN", http.StatusForbidden, "acesso negado")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "registro não encontrado")
	ErrConflict           = New("CONFLICT", http.StatusConflict, "registro já existe")
	ErrRateLimited        = New("RATE_LIMIT_EXCEEDED", http.StatusTooManyRequests, "limite de requisições excedido")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "Erro interno do servidor")

	// ErrCacheMiss is a sentinel for cache lookups, never sent to clients.
	ErrCacheMiss = New("CACHE_MISS", http.StatusInternalServerError, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
