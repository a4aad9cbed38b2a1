package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

const timeStringLayout = "15:04"

// TimeString время суток в формате "HH:MM" (24 часа)
type TimeString string

// NewTimeString берёт часы и минуты из t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит и нормализует строку "H:MM" / "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(parsed), nil
}

// NewTimeStringFromHour возвращает "HH:00" для часа 0..23
func NewTimeStringFromHour(hour int) (TimeString, error) {
	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: hour %d out of range", ErrInvalidTimeString, hour)
	}
	return TimeString(fmt.Sprintf("%02d:00", hour)), nil
}

// String implements fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for an empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Hour returns the hour component, or -1 if the value is malformed
func (t TimeString) Hour() int {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()
}

// Minutes returns minutes since midnight, or -1 if the value is malformed
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore сравнивает время суток
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter сравнивает время суток
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes сдвигает время, не переходя через полночь
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current := t.Minutes()
	if current < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	total := current + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes crosses midnight", ErrInvalidTimeString, string(t), minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
	return nil
}
