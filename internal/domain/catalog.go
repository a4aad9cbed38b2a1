package domain

// AvailabilityWindow is one weekly recurring bookable interval of a doctor.
// StartTime and EndTime are "HH:MM" strings as returned by the API.
type AvailabilityWindow struct {
	Day         string `json:"day"` // English weekday name, e.g. "Monday"
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// Doctor is a consultation provider
type Doctor struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Specialization  string               `json:"specialization"`
	ConsultationFee float64              `json:"consultationFee"`
	Rating          float64              `json:"rating"`
	AvailableSlots  []AvailabilityWindow `json:"availableSlots"`
}

// HasAvailability returns true if the doctor publishes any weekly windows
func (d *Doctor) HasAvailability() bool {
	return d != nil && len(d.AvailableSlots) > 0
}

// Test is a diagnostic test that can be booked
type Test struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // minutes
	Description string  `json:"description"`
}

// DoctorFilter mirrors the query parameters of the doctors listing
type DoctorFilter struct {
	Search         string
	Specialization string
	MinRating      *float64
	MaxFee         *float64
}

// TestFilter mirrors the query parameters of the tests listing
type TestFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}
