package get_available_slots

import (
	"time"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/pkg/types"
)

// windowStatus результат поиска окна доступности на день недели
type windowStatus int

const (
	windowFound windowStatus = iota
	windowMissing
	windowInvalid
)

// CalculateSlots возвращает часовые слоты "HH:00" на выбранную дату по возрастанию.
// Без окон доступности - часы с 9 по 20 включительно.
// Если дата совпадает с сегодняшней, текущий час и все предыдущие исключаются.
func CalculateSlots(windows []domain.AvailabilityWindow, date *time.Time, now time.Time) []types.TimeString {
	if date == nil {
		return []types.TimeString{}
	}

	start, end := domain.DefaultSlotStartHour, domain.DefaultSlotEndHour+1
	if len(windows) > 0 {
		var status windowStatus
		start, end, status = hoursForDay(windows, date.Weekday())
		if status != windowFound {
			return []types.TimeString{}
		}
	}

	// Для сегодняшнего дня слоты только строго в будущих часах
	if isSameDay(*date, now) && start <= now.Hour() {
		start = now.Hour() + 1
	}

	slots := make([]types.TimeString, 0, max(end-start, 0))
	for hour := start; hour < end; hour++ {
		slot, err := types.NewTimeStringFromHour(hour)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// hoursForDay ищет первое доступное окно на день недели и возвращает [start, end) в часах.
// Окно с start >= end или неразбираемым временем не перечисляется.
func hoursForDay(windows []domain.AvailabilityWindow, weekday time.Weekday) (int, int, windowStatus) {
	day := weekday.String()

	for _, w := range windows {
		if w.Day != day || !w.IsAvailable {
			continue
		}

		start, err := types.NewTimeStringFromString(w.StartTime)
		if err != nil {
			return 0, 0, windowInvalid
		}
		end, err := types.NewTimeStringFromString(w.EndTime)
		if err != nil {
			return 0, 0, windowInvalid
		}

		startHour, endHour := start.Hour(), end.Hour()
		if startHour >= endHour {
			return 0, 0, windowInvalid
		}
		return startHour, endHour, windowFound
	}

	return 0, 0, windowMissing
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
