package initiate_payment

import "github.com/m04kA/MediCare-Portal/internal/domain"

// Request модель запроса на начало оплаты
type Request struct {
	AppointmentID string
	IsTest        bool // тестовый режим провайдера
}

// Response опции для открытия окна оплаты в браузере
type Response struct {
	Checkout      domain.CheckoutOptions
	DisplayAmount string // "₹800"
}

// Outcome names reported to metrics
const (
	OutcomeOpened             = "opened"
	OutcomeVerified           = "verified"
	OutcomeVerificationFailed = "verification_failed"
	OutcomeCancelled          = "cancelled"
	OutcomeFailed             = "failed"
)

// Merchant details shown in the checkout window
const (
	MerchantName        = "MediCare Pro"
	CheckoutDescription = "Medical Appointment Payment"
	SuccessMessage      = "Payment completed successfully!"
)
