package payment_callback

import (
	"context"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

type PaymentWidget interface {
	Complete(ctx context.Context, orderID string, result domain.PaymentResult) error
	Dismiss(ctx context.Context, orderID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
