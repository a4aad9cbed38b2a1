package catalog

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInvalidFilter возвращается при некорректных фильтрах
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
