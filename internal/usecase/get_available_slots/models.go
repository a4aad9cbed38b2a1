package get_available_slots

import (
	"time"

	"github.com/m04kA/MediCare-Portal/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	DoctorID string     // ID врача; пустой - без врача, используется диапазон по умолчанию
	Date     *time.Time // Выбранная дата; nil - дата не выбрана
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     *time.Time         // Дата, на которую запрашивались слоты
	DoctorID string             // ID врача
	Fallback bool               // true, если использован диапазон по умолчанию
	Slots    []types.TimeString // Слоты "HH:00" по возрастанию
}
