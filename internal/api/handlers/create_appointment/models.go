package create_appointment

import (
	"github.com/m04kA/MediCare-Portal/internal/service/appointments/models"
	createAppointment "github.com/m04kA/MediCare-Portal/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model. totalAmount от пользователя игнорируется.
type CreateAppointmentRequest struct {
	createAppointment.Draft

	// Только для /admin/appointments
	UserID string `json:"userId,omitempty"`
	Status string `json:"status,omitempty"`
}

// AdminAppointmentRequest HTTP request model для администратора: сумма задаётся явно
type AdminAppointmentRequest struct {
	CreateAppointmentRequest
	Amount *float64 `json:"amount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{Draft: r.Draft}
}

// ToUseCaseRequest конвертирует admin HTTP запрос в модель use case
func (r *AdminAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		Draft:       r.Draft,
		Admin:       true,
		UserID:      r.UserID,
		Status:      r.Status,
		TotalAmount: r.Amount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *models.AppointmentResponse {
	return models.FromDomainAppointment(resp.Appointment)
}
