package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	apiClient "github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
)

// Service сервис справочников врачей и анализов
type Service struct {
	client CatalogClient
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(client CatalogClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Doctors список врачей с фильтрами и список специализаций
func (s *Service) Doctors(ctx context.Context, f domain.DoctorFilter) ([]domain.Doctor, []string, error) {
	if err := validateDoctorFilter(f); err != nil {
		s.logger.Warn("Doctors: %v", err)
		return nil, nil, err
	}

	doctors, err := s.client.ListDoctors(ctx, f)
	if err != nil {
		s.logger.Error("Doctors: api error: %v", err)
		return nil, nil, fmt.Errorf("%w: Doctors - api error: %v", ErrInternal, err)
	}

	// Специализации нужны только для фильтра, их отсутствие не ошибка
	specializations, err := s.client.ListSpecializations(ctx)
	if err != nil {
		s.logger.Warn("Doctors: failed to load specializations: %v", err)
		specializations = []string{}
	}

	s.logger.Info("Doctors: fetched %d doctors", len(doctors))
	return nonNil(doctors), nonNil(specializations), nil
}

// Doctor врач по ID
func (s *Service) Doctor(ctx context.Context, id string) (*domain.Doctor, error) {
	d, err := s.client.GetDoctor(ctx, id)
	if err != nil {
		if errors.Is(err, apiClient.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("Doctor: api error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Doctor - api error: %v", ErrInternal, err)
	}
	return d, nil
}

// Tests список анализов с фильтрами и список категорий
func (s *Service) Tests(ctx context.Context, f domain.TestFilter) ([]domain.Test, []string, error) {
	if err := validateTestFilter(f); err != nil {
		s.logger.Warn("Tests: %v", err)
		return nil, nil, err
	}

	tests, err := s.client.ListTests(ctx, f)
	if err != nil {
		s.logger.Error("Tests: api error: %v", err)
		return nil, nil, fmt.Errorf("%w: Tests - api error: %v", ErrInternal, err)
	}

	categories, err := s.client.ListTestCategories(ctx)
	if err != nil {
		s.logger.Warn("Tests: failed to load categories: %v", err)
		categories = []string{}
	}

	s.logger.Info("Tests: fetched %d tests", len(tests))
	return nonNil(tests), nonNil(categories), nil
}

func validateDoctorFilter(f domain.DoctorFilter) error {
	if f.MinRating != nil && (*f.MinRating < 0 || *f.MinRating > 5) {
		return fmt.Errorf("%w: minRating must be between 0 and 5", ErrInvalidFilter)
	}
	if f.MaxFee != nil && *f.MaxFee < 0 {
		return fmt.Errorf("%w: maxFee must not be negative", ErrInvalidFilter)
	}
	return nil
}

func validateTestFilter(f domain.TestFilter) error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return fmt.Errorf("%w: minPrice must not be negative", ErrInvalidFilter)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must not be negative", ErrInvalidFilter)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return fmt.Errorf("%w: minPrice is greater than maxPrice", ErrInvalidFilter)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
