package initiate_payment

import (
	"github.com/m04kA/MediCare-Portal/internal/domain"
	initiatePayment "github.com/m04kA/MediCare-Portal/internal/usecase/initiate_payment"
)

// InitiatePaymentRequest HTTP request model, тело необязательно
type InitiatePaymentRequest struct {
	IsTest bool `json:"isTest"`
}

// InitiatePaymentResponse опции для окна оплаты в браузере
type InitiatePaymentResponse struct {
	Checkout      domain.CheckoutOptions `json:"checkout"`
	DisplayAmount string                 `json:"displayAmount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initiatePayment.Response) *InitiatePaymentResponse {
	return &InitiatePaymentResponse{
		Checkout:      resp.Checkout,
		DisplayAmount: resp.DisplayAmount,
	}
}
