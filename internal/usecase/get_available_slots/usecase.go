package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	apiClient "github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	doctors      DoctorProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(doctors DoctorProvider, logger Logger) *UseCase {
	return &UseCase{
		doctors:      doctors,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: doctor=%q, date=%s", req.DoctorID, formatDate(req))

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Без выбранной даты слотов нет
	if req.Date == nil {
		return &Response{DoctorID: req.DoctorID, Slots: CalculateSlots(nil, nil, now)}, nil
	}

	// 4. Получаем окна доступности врача
	var windows []domain.AvailabilityWindow
	if req.DoctorID != "" {
		doctor, err := uc.doctors.GetDoctor(ctx, req.DoctorID)
		if err != nil {
			if errors.Is(err, apiClient.ErrNotFound) {
				uc.logger.Warn("GetAvailableSlots: doctor id=%s not found", req.DoctorID)
				return nil, ErrDoctorNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get doctor id=%s: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
		}
		windows = doctor.AvailableSlots
	}

	// 5. Предупреждаем о некорректном окне - оно не перечисляется
	if len(windows) > 0 {
		if _, _, status := hoursForDay(windows, req.Date.Weekday()); status == windowInvalid {
			uc.logger.Warn("GetAvailableSlots: doctor id=%s has an invalid %s window, ignoring it",
				req.DoctorID, req.Date.Weekday())
		}
	}

	// 6. Считаем слоты
	slots := CalculateSlots(windows, req.Date, now)

	uc.logger.Info("GetAvailableSlots: generated %d slots for doctor=%q, date=%s",
		len(slots), req.DoctorID, formatDate(req))

	return &Response{
		Date:     req.Date,
		DoctorID: req.DoctorID,
		Fallback: len(windows) == 0,
		Slots:    slots,
	}, nil
}

func formatDate(req *Request) string {
	if req.Date == nil {
		return "<none>"
	}
	return req.Date.Format(domain.DateFormat)
}
