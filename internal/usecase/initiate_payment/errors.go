package initiate_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("initiate_payment: invalid input data")

	// ErrOrderRejected возвращается, когда API отказалось создать заказ
	ErrOrderRejected = errors.New("initiate_payment: order rejected")

	// ErrMissingKey возвращается, когда в ответе нет ключа провайдера
	ErrMissingKey = errors.New("Razorpay key not found in response")

	// ErrVerificationFailed передаётся в failure-ветку, когда API не подтвердило подпись
	ErrVerificationFailed = errors.New("initiate_payment: verification failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initiate_payment: internal error")
)
