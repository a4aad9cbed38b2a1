package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается, когда API отклонило логин
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotLoggedIn возвращается, когда операция требует сессии
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrRejected возвращается, когда API отклонило запрос с сообщением для пользователя
	ErrRejected = errors.New("rejected by api")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
