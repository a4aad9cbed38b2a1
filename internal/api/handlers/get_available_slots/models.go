package get_available_slots

import (
	"time"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	getAvailableSlots "github.com/m04kA/MediCare-Portal/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     *string  `json:"date"`
	DoctorID string   `json:"doctorId,omitempty"`
	Fallback bool     `json:"fallback"`
	Slots    []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	var date *string
	if resp.Date != nil {
		formatted := resp.Date.Format(domain.DateFormat)
		date = &formatted
	}

	return &AvailableSlotsResponse{
		Date:     date,
		DoctorID: resp.DoctorID,
		Fallback: resp.Fallback,
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров. Пустая дата - дата не выбрана.
func ToUseCaseRequest(doctorID, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{DoctorID: doctorID}
	if dateStr == "" {
		return req, nil
	}

	// Парсим дату
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}
	req.Date = &date

	return req, nil
}
