package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound sinaliza registro inexistente nas buscas por id
var ErrNotFound = errors.New("not found")

// RequestError carrega o status HTTP junto da mensagem para o handler mapear
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// Errf cria um RequestError formatado
func Errf(status int, format string, args ...any) error {
	return &RequestError{Status: status, Message: fmt.Sprintf(format, args...)}
}
