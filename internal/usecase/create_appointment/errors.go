package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation общая ошибка валидации черновика; все ошибки ниже её оборачивают
	ErrValidation = errors.New("create_appointment: validation failed")

	// ErrTypeRequired возвращается, когда тип записи не выбран или неизвестен
	ErrTypeRequired = fmt.Errorf("%w: appointment type is required", ErrValidation)

	// ErrDoctorRequired возвращается, когда для консультации не выбран врач
	ErrDoctorRequired = fmt.Errorf("%w: please select a doctor for consultation", ErrValidation)

	// ErrTestRequired возвращается, когда для анализа не выбран тест
	ErrTestRequired = fmt.Errorf("%w: please select a test", ErrValidation)

	// ErrDateRequired возвращается, когда дата не указана или в неверном формате
	ErrDateRequired = fmt.Errorf("%w: appointment date is required (YYYY-MM-DD)", ErrValidation)

	// ErrTimeRequired возвращается, когда время не указано или в неверном формате
	ErrTimeRequired = fmt.Errorf("%w: appointment time is required (HH:MM)", ErrValidation)

	// ErrFieldTooLong возвращается, когда текстовое поле превышает допустимую длину
	ErrFieldTooLong = fmt.Errorf("%w: field is too long", ErrValidation)

	// ErrUserRequired возвращается, когда в режиме администратора не указан пациент
	ErrUserRequired = fmt.Errorf("%w: user is required", ErrValidation)

	// ErrNotLoggedIn возвращается, когда нет активной сессии
	ErrNotLoggedIn = errors.New("create_appointment: please log in to book an appointment")

	// ErrForbidden возвращается, когда admin-режим вызван без роли ADMIN
	ErrForbidden = errors.New("create_appointment: admin role required")

	// ErrRejected возвращается, когда API отклонило запись
	ErrRejected = errors.New("create_appointment: rejected by api")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
