package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/pkg/types"
)

// validateDraft проверяет обязательные поля черновика.
// В admin-режиме врач/анализ не обязательны.
func validateDraft(d Draft, admin bool) error {
	if !d.Type.IsValid() {
		return ErrTypeRequired
	}

	if !admin {
		if d.Type == domain.AppointmentConsultation && strings.TrimSpace(d.DoctorID) == "" {
			return ErrDoctorRequired
		}
		if d.Type == domain.AppointmentTest && strings.TrimSpace(d.TestID) == "" {
			return ErrTestRequired
		}
	}

	// Проверяем дату
	if _, err := time.Parse(domain.DateFormat, strings.TrimSpace(d.Date)); err != nil {
		return ErrDateRequired
	}

	// Проверяем время
	if _, err := types.NewTimeStringFromString(strings.TrimSpace(d.Time)); err != nil {
		return ErrTimeRequired
	}

	if err := validateLength("patientName", d.PatientName, domain.MaxPatientNameLength); err != nil {
		return err
	}
	if err := validateLength("symptoms", d.Symptoms, domain.MaxSymptomsLength); err != nil {
		return err
	}
	if err := validateLength("notes", d.Notes, domain.MaxNotesLength); err != nil {
		return err
	}

	return nil
}

func validateLength(field, value string, limit int) error {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > limit {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, field, limit)
	}
	return nil
}

// normalizeTime приводит время к HH:MM; вызывается только после валидации
func normalizeTime(s string) string {
	t, err := types.NewTimeStringFromString(strings.TrimSpace(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.String()
}
