package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/MediCare-Portal/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidType возвращается при некорректном типе записи
	ErrInvalidType = errors.New("invalid appointment type")
)

// Request модели

// ListAppointmentsRequest фильтры списка записей пользователя
type ListAppointmentsRequest struct {
	Status *string `json:"status,omitempty"`
	Type   *string `json:"type,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentFilter, error) {
	var filter domain.AppointmentFilter

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Type != nil {
		t := domain.AppointmentType(strings.ToLower(strings.TrimSpace(*r.Type)))
		if !t.IsValid() {
			return filter, ErrInvalidType
		}
		filter.Type = &t
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string  `json:"id"`
	AppointmentType string  `json:"appointmentType"`
	DoctorID        *string `json:"doctorId,omitempty"`
	TestID          *string `json:"testId,omitempty"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-10-19"
	AppointmentTime string  `json:"appointmentTime"` // "10:00"
	PatientName     *string `json:"patientName,omitempty"`
	Symptoms        *string `json:"symptoms,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	CanBePaid       bool    `json:"canBePaid"`
	CreatedAt       *string `json:"createdAt,omitempty"` // ISO 8601 format
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID,
		AppointmentType: string(a.AppointmentType),
		DoctorID:        a.DoctorID,
		TestID:          a.TestID,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		PatientName:     a.PatientName,
		Symptoms:        a.Symptoms,
		Notes:           a.Notes,
		TotalAmount:     a.TotalAmount,
		Status:          string(a.Status),
		PaymentStatus:   string(a.PaymentStatus),
		CanBePaid:       a.CanBePaid(),
	}

	if a.CreatedAt != nil {
		created := a.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &created
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}
	for i := range list {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(&list[i]))
	}
	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	normalized := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, status := range domain.AppointmentStatuses {
		if status == normalized {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}
