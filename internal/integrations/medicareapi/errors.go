package medicareapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized возвращается на 401: токен отсутствует или больше не принимается
	ErrUnauthorized = errors.New("medicareapi client: unauthorized")

	// ErrNotFound возвращается на 404
	ErrNotFound = errors.New("medicareapi client: not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("medicareapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("medicareapi client: invalid response")
)

// APIError отказ API с сообщением для пользователя (4xx/5xx или success=false)
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("medicareapi: status %d: %s", e.StatusCode, e.Message)
}
