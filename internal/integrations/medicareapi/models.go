package medicareapi

import (
	"encoding/json"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

// envelope общая обёртка всех ответов API
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Credentials тело запроса логина
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration тело запроса регистрации
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult пользователь и bearer-токен после логина или регистрации
type AuthResult struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// ProfileUpdate тело PATCH профиля; пустые поля не отправляются
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// AppointmentPayload тело создания записи. Отсутствующие поля не сериализуются, "" не отправляется никогда.
type AppointmentPayload struct {
	AppointmentType domain.AppointmentType `json:"appointmentType"`
	DoctorID        *string                `json:"doctorId,omitempty"`
	TestID          *string                `json:"testId,omitempty"`
	AppointmentDate string                 `json:"appointmentDate"`
	AppointmentTime string                 `json:"appointmentTime"`
	PatientName     *string                `json:"patientName,omitempty"`
	Symptoms        *string                `json:"symptoms,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	TotalAmount     float64                `json:"totalAmount"`
	UserID          *string                `json:"userId,omitempty"`
	Status          *string                `json:"status,omitempty"`
}

// OrderRequest тело создания заказа на оплату
type OrderRequest struct {
	AppointmentID string `json:"appointmentId"`
	IsTest        bool   `json:"isTest"`
}

// orderResponse data ответа на создание заказа
type orderResponse struct {
	Order struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Receipt  string `json:"receipt"`
		Status   string `json:"status"`
		Key      string `json:"key"`
	} `json:"order"`
	PaymentID string `json:"paymentId"`
	Key       string `json:"key"`
}

// VerifyRequest тело проверки платежа
type VerifyRequest struct {
	PaymentID string `json:"paymentId"`
	domain.PaymentResult
	IsTest bool `json:"isTest"`
}

// VerifyResult результат проверки подписи платежа
type VerifyResult struct {
	Verified bool
	Message  string
	Data     json.RawMessage
}
