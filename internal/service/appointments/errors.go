package appointments

import "errors"

var (
	// ErrNotFound возвращается, когда запись ресурса не найдена
	ErrNotFound = errors.New("not found")

	// ErrUnknownResource возвращается для ресурса вне списка admin-ресурсов
	ErrUnknownResource = errors.New("unknown admin resource")

	// ErrReadOnly возвращается при попытке изменить ресурс только для чтения
	ErrReadOnly = errors.New("resource is read-only")

	// ErrNotLoggedIn возвращается, когда API отклонило токен
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrRejected возвращается, когда API отклонило запрос с сообщением
	ErrRejected = errors.New("rejected by api")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
