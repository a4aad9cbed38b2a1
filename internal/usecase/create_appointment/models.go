package create_appointment

import "github.com/m04kA/MediCare-Portal/internal/domain"

// Draft состояние формы записи до отправки. Строки как ввёл пользователь.
type Draft struct {
	Type        domain.AppointmentType `json:"appointmentType"`
	DoctorID    string                 `json:"doctorId"`
	TestID      string                 `json:"testId"`
	Date        string                 `json:"appointmentDate"` // YYYY-MM-DD
	Time        string                 `json:"appointmentTime"` // HH:MM
	PatientName string                 `json:"patientName"`
	Symptoms    string                 `json:"symptoms"`
	Notes       string                 `json:"notes"`
	TotalAmount float64                `json:"totalAmount"` // вычисляется, ввод пользователя игнорируется
}

// Request модель запроса на создание записи
type Request struct {
	Draft Draft
	Admin bool // запись от имени администратора через /admin/appointments

	// Только для Admin
	UserID      string   // пациент, для которого создаётся запись
	Status      string   // начальный статус, пустой - решает API
	TotalAmount *float64 // явная сумма; nil - вычислить по справочнику
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
