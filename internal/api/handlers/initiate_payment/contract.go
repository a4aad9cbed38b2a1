package initiate_payment

import (
	"context"

	initiatePayment "github.com/m04kA/MediCare-Portal/internal/usecase/initiate_payment"
)

type InitiatePaymentUseCase interface {
	Execute(ctx context.Context, req *initiatePayment.Request) (*initiatePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
