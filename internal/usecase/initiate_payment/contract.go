package initiate_payment

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Portal/internal/payment"
)

// PaymentClient заказ и проверка платежа на стороне API
type PaymentClient interface {
	CreatePaymentOrder(ctx context.Context, req medicareapi.OrderRequest) (*domain.PaymentOrder, error)
	VerifyPayment(ctx context.Context, req medicareapi.VerifyRequest) (*medicareapi.VerifyResult, error)
}

// Collaborator окно оплаты провайдера: два исхода через callbacks
type Collaborator interface {
	Open(ctx context.Context, opts domain.CheckoutOptions, onSuccess payment.SuccessFunc, onFailure payment.FailureFunc) (domain.CheckoutOptions, error)
}

// Notifier уведомления пользователю
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Metrics счётчик исходов оплаты
type Metrics interface {
	IncPaymentEvent(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
