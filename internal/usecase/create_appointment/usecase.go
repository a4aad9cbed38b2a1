package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	apiClient "github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
)

// UseCase use case для создания записи на приём или анализ
type UseCase struct {
	sessions SessionReader
	catalog  CatalogClient
	api      AppointmentClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionReader, catalog CatalogClient, api AppointmentClient, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		catalog:  catalog,
		api:      api,
		logger:   logger,
	}
}

// Execute выполняет use case создания записи.
// Ошибки валидации возвращаются до любого сетевого вызова.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем сессию
	s := uc.sessions.Snapshot()
	if !s.IsValid() || s.User.ID == "" {
		uc.logger.Warn("CreateAppointment: no logged-in user")
		return nil, ErrNotLoggedIn
	}
	if req.Admin && !s.HasRole(domain.RoleAdmin) {
		uc.logger.Warn("CreateAppointment: user id=%s is not an admin", s.User.ID)
		return nil, ErrForbidden
	}

	uc.logger.Info("CreateAppointment: user=%s, admin=%t, type=%s, date=%s, time=%s",
		s.User.ID, req.Admin, req.Draft.Type, req.Draft.Date, req.Draft.Time)

	// 2. Валидация черновика
	if err := validateDraft(req.Draft, req.Admin); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 3. Считаем сумму
	amount, err := uc.resolveAmount(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Собираем тело запроса
	var payload apiClient.AppointmentPayload
	if req.Admin {
		payload, err = BuildAdminPayload(req.Draft, amount, req.UserID, req.Status)
	} else {
		payload, err = BuildPayload(req.Draft, amount)
	}
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to build payload: %v", err)
		return nil, err
	}

	// 5. Отправляем
	var created *domain.Appointment
	if req.Admin {
		created, err = uc.api.CreateAdminAppointment(ctx, payload)
	} else {
		created, err = uc.api.CreateAppointment(ctx, payload)
	}
	if err != nil {
		return nil, uc.mapSubmitError(err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s, amount=%.2f", created.ID, created.TotalAmount)

	return &Response{Appointment: created}, nil
}

// resolveAmount загружает справочник выбранного типа и считает сумму
func (uc *UseCase) resolveAmount(ctx context.Context, req *Request) (float64, error) {
	if req.Admin && req.TotalAmount != nil {
		return *req.TotalAmount, nil
	}

	var (
		doctors []domain.Doctor
		tests   []domain.Test
		err     error
	)

	switch {
	case req.Draft.Type == domain.AppointmentConsultation && strings.TrimSpace(req.Draft.DoctorID) != "":
		doctors, err = uc.catalog.ListDoctors(ctx, domain.DoctorFilter{})
	case req.Draft.Type == domain.AppointmentTest && strings.TrimSpace(req.Draft.TestID) != "":
		tests, err = uc.catalog.ListTests(ctx, domain.TestFilter{})
	default:
		return 0, nil
	}
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load catalog: %v", err)
		return 0, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	amount := ComputeAmount(req.Draft, doctors, tests)
	if amount == 0 {
		uc.logger.Warn("CreateAppointment: no price found for doctor=%q test=%q, submitting zero amount",
			req.Draft.DoctorID, req.Draft.TestID)
	}
	return amount, nil
}

func (uc *UseCase) mapSubmitError(err error) error {
	if errors.Is(err, apiClient.ErrUnauthorized) {
		uc.logger.Warn("CreateAppointment: session rejected by api")
		return ErrNotLoggedIn
	}

	var apiErr *apiClient.APIError
	if errors.As(err, &apiErr) {
		uc.logger.Warn("CreateAppointment: api rejected appointment: %s", apiErr.Message)
		return fmt.Errorf("%w: %w", ErrRejected, apiErr)
	}

	uc.logger.Error("CreateAppointment: failed to submit appointment: %v", err)
	return fmt.Errorf("%w: failed to submit appointment: %v", ErrInternal, err)
}
