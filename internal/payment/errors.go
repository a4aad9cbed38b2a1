package payment

import (
	"errors"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

var (
	// ErrCancelled передаётся в failure-callback, когда пользователь закрыл окно оплаты
	ErrCancelled = errors.New(domain.PaymentCancelledMessage)

	// ErrExpired передаётся в failure-callback, когда окно оплаты не завершено вовремя
	ErrExpired = errors.New("Payment session expired")

	// ErrUnknownOrder возвращается, когда для заказа нет открытой оплаты
	ErrUnknownOrder = errors.New("payment: no open checkout for order")

	// ErrOrderMismatch возвращается, когда результат оплаты относится к другому заказу
	ErrOrderMismatch = errors.New("payment: result does not belong to order")

	// ErrInvalidOptions возвращается, когда в опциях checkout нет заказа или ключа
	ErrInvalidOptions = errors.New("payment: checkout options require order id and key")
)
