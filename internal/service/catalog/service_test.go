package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/integrations/medicareapi"
	"github.com/m04kA/MediCare-Portal/pkg/logger"
	"github.com/m04kA/MediCare-Portal/pkg/ptr"
)

type fakeCatalog struct {
	doctors    []domain.Doctor
	tests      []domain.Test
	listErr    error
	facetErr   error
	gotDoctorF domain.DoctorFilter
}

func (f *fakeCatalog) ListDoctors(_ context.Context, filter domain.DoctorFilter) ([]domain.Doctor, error) {
	f.gotDoctorF = filter
	return f.doctors, f.listErr
}

func (f *fakeCatalog) GetDoctor(_ context.Context, id string) (*domain.Doctor, error) {
	for _, d := range f.doctors {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("%w: doctor %s", medicareapi.ErrNotFound, id)
}

func (f *fakeCatalog) ListSpecializations(context.Context) ([]string, error) {
	if f.facetErr != nil {
		return nil, f.facetErr
	}
	return []string{"Cardiology"}, nil
}

func (f *fakeCatalog) ListTests(context.Context, domain.TestFilter) ([]domain.Test, error) {
	return f.tests, f.listErr
}

func (f *fakeCatalog) ListTestCategories(context.Context) ([]string, error) {
	if f.facetErr != nil {
		return nil, f.facetErr
	}
	return []string{"Blood"}, nil
}

func TestService_Doctors(t *testing.T) {
	client := &fakeCatalog{doctors: []domain.Doctor{{ID: "d1"}}}
	svc := NewService(client, logger.NewNop())

	filter := domain.DoctorFilter{Specialization: "Cardiology", MaxFee: ptr.Ptr(1000.0)}
	doctors, specs, err := svc.Doctors(context.Background(), filter)
	require.NoError(t, err)

	assert.Len(t, doctors, 1)
	assert.Equal(t, []string{"Cardiology"}, specs)
	assert.Equal(t, filter, client.gotDoctorF)
}

func TestService_DoctorsFacetFailureIsNotFatal(t *testing.T) {
	svc := NewService(&fakeCatalog{facetErr: errors.New("boom")}, logger.NewNop())

	doctors, specs, err := svc.Doctors(context.Background(), domain.DoctorFilter{})
	require.NoError(t, err)
	assert.NotNil(t, doctors)
	assert.Empty(t, specs)
}

func TestService_InvalidFilters(t *testing.T) {
	svc := NewService(&fakeCatalog{}, logger.NewNop())
	ctx := context.Background()

	_, _, err := svc.Doctors(ctx, domain.DoctorFilter{MinRating: ptr.Ptr(7.0)})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, _, err = svc.Tests(ctx, domain.TestFilter{MinPrice: ptr.Ptr(500.0), MaxPrice: ptr.Ptr(100.0)})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestService_Doctor(t *testing.T) {
	svc := NewService(&fakeCatalog{doctors: []domain.Doctor{{ID: "d1"}}}, logger.NewNop())

	d, err := svc.Doctor(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)

	_, err = svc.Doctor(context.Background(), "d9")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestService_TestsUpstreamError(t *testing.T) {
	svc := NewService(&fakeCatalog{listErr: errors.New("boom")}, logger.NewNop())

	_, _, err := svc.Tests(context.Background(), domain.TestFilter{})
	assert.ErrorIs(t, err, ErrInternal)
}
