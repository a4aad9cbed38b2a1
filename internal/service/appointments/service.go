package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	apiClient "github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Portal/internal/service/appointments/models"
)

// Admin-ресурсы MediCare API
const (
	ResourceUsers        = "users"
	ResourceDoctors      = "doctors"
	ResourceTests        = "tests"
	ResourceAppointments = "appointments"
	ResourceDashboard    = "dashboard"
)

var adminResources = map[string]bool{
	ResourceUsers:        true,
	ResourceDoctors:      true,
	ResourceTests:        true,
	ResourceAppointments: true,
	ResourceDashboard:    false, // только чтение
}

// Необязательные поля записи, пустые значения не отправляются
var optionalAppointmentFields = []string{"doctorId", "testId", "patientName", "symptoms", "notes"}

// Service сервис для работы с записями и admin-ресурсами
type Service struct {
	client AppointmentClient
	admin  AdminClient
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(client AppointmentClient, admin AdminClient, logger Logger) *Service {
	return &Service{
		client: client,
		admin:  admin,
		logger: logger,
	}
}

// ListUserAppointments получает записи текущего пользователя
// Опционально фильтрует по статусу и типу
func (s *Service) ListUserAppointments(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListUserAppointments: fetching appointments, status=%v, type=%v", req.Status, req.Type)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListUserAppointments: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.client.ListAppointments(ctx)
	if err != nil {
		return nil, s.mapError("ListUserAppointments", err)
	}

	filtered := list[:0:0]
	for i := range list {
		if filter.Matches(&list[i]) {
			filtered = append(filtered, list[i])
		}
	}

	s.logger.Info("ListUserAppointments: fetched %d of %d appointments", len(filtered), len(list))
	return models.FromDomainAppointmentList(filtered), nil
}

// AdminList список записей admin-ресурса
func (s *Service) AdminList(ctx context.Context, resource string, params url.Values) (json.RawMessage, error) {
	if err := s.checkResource(resource, false); err != nil {
		return nil, err
	}

	s.logger.Info("AdminList: resource=%s", resource)

	data, err := s.admin.Resource(adminPath(resource)).List(ctx, params)
	if err != nil {
		return nil, s.mapError("AdminList", err)
	}
	return data, nil
}

// AdminGet одна запись admin-ресурса
func (s *Service) AdminGet(ctx context.Context, resource, id string) (json.RawMessage, error) {
	if err := s.checkResource(resource, false); err != nil {
		return nil, err
	}

	data, err := s.admin.Resource(adminPath(resource)).Get(ctx, id)
	if err != nil {
		return nil, s.mapError("AdminGet", err)
	}
	return data, nil
}

// AdminCreate создаёт запись admin-ресурса
func (s *Service) AdminCreate(ctx context.Context, resource string, body map[string]interface{}) (json.RawMessage, error) {
	if err := s.checkResource(resource, true); err != nil {
		return nil, err
	}

	s.logger.Info("AdminCreate: resource=%s", resource)

	data, err := s.admin.Resource(adminPath(resource)).Create(ctx, sanitize(resource, body, false))
	if err != nil {
		return nil, s.mapError("AdminCreate", err)
	}
	return data, nil
}

// AdminUpdate обновляет запись admin-ресурса.
// Пустой пароль пользователя не отправляется, чтобы не затереть текущий.
func (s *Service) AdminUpdate(ctx context.Context, resource, id string, body map[string]interface{}) (json.RawMessage, error) {
	if err := s.checkResource(resource, true); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	s.logger.Info("AdminUpdate: resource=%s, id=%s", resource, id)

	data, err := s.admin.Resource(adminPath(resource)).Update(ctx, id, sanitize(resource, body, true))
	if err != nil {
		return nil, s.mapError("AdminUpdate", err)
	}
	return data, nil
}

// AdminDelete удаляет запись admin-ресурса
func (s *Service) AdminDelete(ctx context.Context, resource, id string) error {
	if err := s.checkResource(resource, true); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	s.logger.Info("AdminDelete: resource=%s, id=%s", resource, id)

	if err := s.admin.Resource(adminPath(resource)).Delete(ctx, id); err != nil {
		return s.mapError("AdminDelete", err)
	}
	return nil
}

// Вспомогательные методы

func (s *Service) checkResource(name string, write bool) error {
	writable, ok := adminResources[name]
	if !ok {
		s.logger.Warn("admin: unknown resource=%s", name)
		return fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	if write && !writable {
		s.logger.Warn("admin: write to read-only resource=%s", name)
		return fmt.Errorf("%w: %s", ErrReadOnly, name)
	}
	return nil
}

func (s *Service) mapError(op string, err error) error {
	if errors.Is(err, apiClient.ErrNotFound) {
		s.logger.Warn("%s: not found", op)
		return ErrNotFound
	}
	if errors.Is(err, apiClient.ErrUnauthorized) {
		s.logger.Warn("%s: session rejected by api", op)
		return ErrNotLoggedIn
	}

	var apiErr *apiClient.APIError
	if errors.As(err, &apiErr) {
		s.logger.Warn("%s: rejected by api: %s", op, apiErr.Message)
		return fmt.Errorf("%w: %w", ErrRejected, apiErr)
	}

	s.logger.Error("%s: api error: %v", op, err)
	return fmt.Errorf("%w: %s - api error: %v", ErrInternal, op, err)
}

func adminPath(resource string) string {
	return "admin/" + resource
}

// sanitize копирует тело, убирая пустые необязательные поля
func sanitize(resource string, body map[string]interface{}, update bool) map[string]interface{} {
	out := make(map[string]interface{}, len(body))
	for k, v := range body {
		out[k] = v
	}

	switch resource {
	case ResourceUsers:
		if update && isBlank(out["password"]) {
			delete(out, "password")
		}
	case ResourceAppointments:
		for _, field := range optionalAppointmentFields {
			if isBlank(out[field]) {
				delete(out, field)
			}
		}
	}
	return out
}

func isBlank(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
