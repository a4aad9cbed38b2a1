package create_appointment

import (
	"strings"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
)

// ComputeAmount сумма к оплате: стоимость консультации врача или цена анализа.
// Не найденный врач или анализ - 0.
func ComputeAmount(d Draft, doctors []domain.Doctor, tests []domain.Test) float64 {
	switch d.Type {
	case domain.AppointmentConsultation:
		id := strings.TrimSpace(d.DoctorID)
		if id == "" {
			return 0
		}
		for _, doc := range doctors {
			if doc.ID == id {
				return doc.ConsultationFee
			}
		}
	case domain.AppointmentTest:
		id := strings.TrimSpace(d.TestID)
		if id == "" {
			return 0
		}
		for _, t := range tests {
			if t.ID == id {
				return t.Price
			}
		}
	}
	return 0
}

// SelectType переключает тип записи. Смена типа сбрасывает ссылку другого типа и сумму.
func SelectType(d Draft, t domain.AppointmentType) Draft {
	if d.Type == t {
		return d
	}

	d.Type = t
	d.TotalAmount = 0
	switch t {
	case domain.AppointmentConsultation:
		d.TestID = ""
	case domain.AppointmentTest:
		d.DoctorID = ""
	}
	return d
}

// SelectDoctor выбирает врача и пересчитывает сумму
func SelectDoctor(d Draft, doctorID string, doctors []domain.Doctor) Draft {
	d = SelectType(d, domain.AppointmentConsultation)
	d.DoctorID = doctorID
	d.TotalAmount = ComputeAmount(d, doctors, nil)
	return d
}

// SelectTest выбирает анализ и пересчитывает сумму
func SelectTest(d Draft, testID string, tests []domain.Test) Draft {
	d = SelectType(d, domain.AppointmentTest)
	d.TestID = testID
	d.TotalAmount = ComputeAmount(d, nil, tests)
	return d
}

// BuildPayload проверяет черновик и собирает тело запроса.
// Пустые после trim необязательные поля не отправляются; из ID отправляется только ID выбранного типа.
func BuildPayload(d Draft, amount float64) (medicareapi.AppointmentPayload, error) {
	if err := validateDraft(d, false); err != nil {
		return medicareapi.AppointmentPayload{}, err
	}

	return basePayload(d, amount), nil
}

// BuildAdminPayload то же для консоли администратора. Врач/анализ необязательны,
// но ID другого типа не отправляется никогда.
func BuildAdminPayload(d Draft, amount float64, userID, status string) (medicareapi.AppointmentPayload, error) {
	if err := validateDraft(d, true); err != nil {
		return medicareapi.AppointmentPayload{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return medicareapi.AppointmentPayload{}, ErrUserRequired
	}

	p := basePayload(d, amount)
	p.UserID = optional(userID)
	p.Status = optional(status)
	return p, nil
}

// basePayload из ID отправляется только ID выбранного типа
func basePayload(d Draft, amount float64) medicareapi.AppointmentPayload {
	p := medicareapi.AppointmentPayload{
		AppointmentType: d.Type,
		AppointmentDate: strings.TrimSpace(d.Date),
		AppointmentTime: normalizeTime(d.Time),
		PatientName:     optional(d.PatientName),
		Symptoms:        optional(d.Symptoms),
		Notes:           optional(d.Notes),
		TotalAmount:     amount,
	}
	switch d.Type {
	case domain.AppointmentConsultation:
		p.DoctorID = optional(d.DoctorID)
	case domain.AppointmentTest:
		p.TestID = optional(d.TestID)
	}
	return p
}

// optional пустая после trim строка - nil
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
