package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	apiClient "github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
)

// Service сервис входа, регистрации и профиля
type Service struct {
	store  SessionStore
	client AuthClient
	logger Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(store SessionStore, client AuthClient, logger Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		logger: logger,
	}
}

// Login проверяет учётные данные через API и сохраняет сессию
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: user=%s", username)

	res, err := s.client.Login(ctx, apiClient.Credentials{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, apiClient.ErrUnauthorized) {
			s.logger.Warn("Login: credentials rejected for user=%s", username)
			return nil, ErrInvalidCredentials
		}
		return nil, s.mapError("Login", err)
	}

	if err := s.store.Login(ctx, res.User, res.Token); err != nil {
		s.logger.Error("Login: failed to store session for user=%s: %v", username, err)
		return nil, fmt.Errorf("%w: Login - session store error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%s logged in, role=%s", res.User.Username, res.User.Role)
	return &res.User, nil
}

// Register создаёт аккаунт. Если API сразу выдало токен - пользователь залогинен.
func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.User, bool, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" {
		return nil, false, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, false, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	s.logger.Info("Register: user=%s", username)

	res, err := s.client.Register(ctx, apiClient.Registration{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, false, s.mapError("Register", err)
	}

	if res.Token == "" {
		s.logger.Info("Register: user=%s registered, login required", username)
		return &res.User, false, nil
	}

	if err := s.store.Login(ctx, res.User, res.Token); err != nil {
		s.logger.Error("Register: failed to store session for user=%s: %v", username, err)
		return nil, false, fmt.Errorf("%w: Register - session store error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user=%s registered and logged in", username)
	return &res.User, true, nil
}

// Logout очищает сессию. Идемпотентен.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Logout(ctx); err != nil {
		s.logger.Error("Logout: session store error: %v", err)
		return fmt.Errorf("%w: Logout - session store error: %v", ErrInternal, err)
	}
	s.logger.Info("Logout: session cleared")
	return nil
}

// UpdateProfile обновляет имя и email через API и сливает ответ в сессию
func (s *Service) UpdateProfile(ctx context.Context, patch domain.UserPatch) (*domain.User, error) {
	session := s.store.Snapshot()
	if !session.IsValid() {
		return nil, ErrNotLoggedIn
	}
	if patch.Username == nil && patch.Email == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if patch.Email != nil {
		if _, err := mail.ParseAddress(*patch.Email); err != nil {
			return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
	}

	s.logger.Info("UpdateProfile: user=%s", session.User.ID)

	updated, err := s.client.UpdateProfile(ctx, apiClient.ProfileUpdate{Username: patch.Username, Email: patch.Email})
	if err != nil {
		return nil, s.mapError("UpdateProfile", err)
	}

	// Роль с клиента не меняется
	merged := domain.UserPatch{Username: &updated.Username, Email: &updated.Email}
	if err := s.store.UpdateUser(ctx, merged); err != nil {
		s.logger.Error("UpdateProfile: failed to update session: %v", err)
		return nil, fmt.Errorf("%w: UpdateProfile - session store error: %v", ErrInternal, err)
	}

	current := s.store.Snapshot()
	s.logger.Info("UpdateProfile: user=%s updated", session.User.ID)
	return current.User, nil
}

// Session текущая сессия
func (s *Service) Session() domain.Session {
	return s.store.Snapshot()
}

func (s *Service) mapError(op string, err error) error {
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
