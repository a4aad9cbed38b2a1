package domain

import "time"

// AppointmentType selects between a doctor consultation and a diagnostic test
type AppointmentType string

const (
	AppointmentConsultation AppointmentType = "consultation"
	AppointmentTest         AppointmentType = "test"
)

// IsValid returns true for a known appointment type
func (t AppointmentType) IsValid() bool {
	return t == AppointmentConsultation || t == AppointmentTest
}

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// PaymentStatus represents the payment state of an appointment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Appointment represents a booked appointment as returned by the API
type Appointment struct {
	ID              string            `json:"id"`
	AppointmentType AppointmentType   `json:"appointmentType"`
	DoctorID        *string           `json:"doctorId,omitempty"`
	TestID          *string           `json:"testId,omitempty"`
	AppointmentDate string            `json:"appointmentDate"`
	AppointmentTime string            `json:"appointmentTime"`
	PatientName     *string           `json:"patientName,omitempty"`
	Symptoms        *string           `json:"symptoms,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	TotalAmount     float64           `json:"totalAmount"`
	Status          AppointmentStatus `json:"status"`
	PaymentStatus   PaymentStatus     `json:"paymentStatus"`
	CreatedAt       *time.Time        `json:"createdAt,omitempty"`
}

// IsPaid returns true if the appointment has been paid for
func (a *Appointment) IsPaid() bool {
	return a.PaymentStatus == PaymentPaid
}

// CanBePaid returns true if a payment can still be initiated
func (a *Appointment) CanBePaid() bool {
	return a.PaymentStatus != PaymentPaid &&
		a.PaymentStatus != PaymentRefunded &&
		a.Status != AppointmentCancelled
}

// AppointmentFilter filters a user's appointment list
type AppointmentFilter struct {
	Status *AppointmentStatus
	Type   *AppointmentType
}

// Matches returns true if the appointment satisfies every set criterion
func (f AppointmentFilter) Matches(a *Appointment) bool {
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.Type != nil && a.AppointmentType != *f.Type {
		return false
	}
	return true
}
