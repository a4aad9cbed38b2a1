package domain

import "time"

// Default slot range used when a doctor publishes no availability windows
const (
	DefaultSlotStartHour = 9
	DefaultSlotEndHour   = 20 // inclusive
)

// Session and navigation defaults
const (
	SessionStorageKey    = "auth-storage"
	LoginPath            = "/login"
	HomePath             = "/"
	DefaultGracePeriod   = 100 * time.Millisecond
	DefaultRedirectDelay = 100 * time.Millisecond
)

// Notification defaults
const (
	GenericErrorMessage     = "An error occurred"
	PaymentCancelledMessage = "Payment cancelled by user"
)

// Business validation constants
const (
	MaxNotesLength       = 1000
	MaxSymptomsLength    = 1000
	MaxPatientNameLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AppointmentStatuses all statuses the API may report for an appointment
var AppointmentStatuses = []AppointmentStatus{
	AppointmentPending,
	AppointmentConfirmed,
	AppointmentCompleted,
	AppointmentCancelled,
}
