package rates

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	propertyRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/property"
	rateRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/seasonalrate"
	"github.com/akimovv/VRM-BookingService/internal/service/rates/models"
)

type fakeRateRepo struct {
	rates         []*domain.SeasonalRate
	deactivateErr error
	deactivatedID int64
	nextID        int64
}

func (f *fakeRateRepo) Create(_ context.Context, rate *domain.SeasonalRate) (*domain.SeasonalRate, error) {
	created := *rate
	created.ID = f.nextID
	created.IsActive = true
	f.rates = append(f.rates, &created)
	return &created, nil
}

func (f *fakeRateRepo) GetByID(_ context.Context, id int64) (*domain.SeasonalRate, error) {
	for _, r := range f.rates {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, rateRepo.ErrRateNotFound
}

func (f *fakeRateRepo) GetActiveByProperty(_ context.Context, _ int64) ([]*domain.SeasonalRate, error) {
	var active []*domain.SeasonalRate
	for _, r := range f.rates {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (f *fakeRateRepo) GetAllByProperty(_ context.Context, _ int64) ([]*domain.SeasonalRate, error) {
	return f.rates, nil
}

func (f *fakeRateRepo) Deactivate(_ context.Context, id int64) error {
	if f.deactivateErr != nil {
		return f.deactivateErr
	}
	f.deactivatedID = id
	return nil
}

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(_ context.Context, _ int64) (*domain.Property, error) {
	return f.property, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeRateRepo) {
	repo := &fakeRateRepo{nextID: 10}
	svc := NewService(repo, &fakePropertyRepo{property: &domain.Property{ID: 1, IsActive: true}}, nopLogger{})
	return svc, repo
}

func validCreateRequest() *models.CreateRateRequest {
	return &models.CreateRateRequest{
		PropertyID:    1,
		Name:          "Christmas Peak",
		StartDate:     "2026-12-20",
		EndDate:       "2027-01-05",
		RateType:      "multiplier",
		RateValue:     1.5,
		MinStayNights: 3,
		Priority:      90,
	}
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Christmas Peak", resp.Name)
	assert.True(t, resp.IsActive)
	require.Len(t, repo.rates, 1)
	assert.Equal(t, domain.RateTypeMultiplier, repo.rates[0].RateType)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*models.CreateRateRequest)
	}{
		{"empty name", func(r *models.CreateRateRequest) { r.Name = "" }},
		{"end before start", func(r *models.CreateRateRequest) { r.EndDate = "2026-12-19" }},
		{"unknown rate type", func(r *models.CreateRateRequest) { r.RateType = "discount" }},
		{"unparseable date", func(r *models.CreateRateRequest) { r.StartDate = "20.12.2026" }},
		{"non-positive multiplier", func(r *models.CreateRateRequest) { r.RateValue = 0 }},
		{"percentage above 100", func(r *models.CreateRateRequest) { r.RateType = "percentage"; r.RateValue = 150 }},
		{"zero min stay", func(r *models.CreateRateRequest) { r.MinStayNights = 0 }},
		{"priority out of range", func(r *models.CreateRateRequest) { r.Priority = 101 }},
		{"invalid day of week", func(r *models.CreateRateRequest) { r.ApplicableDaysOfWeek = []int{7} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_PropertyNotFound(t *testing.T) {
	repo := &fakeRateRepo{nextID: 10}
	svc := NewService(repo, &fakePropertyRepo{err: propertyRepo.ErrPropertyNotFound}, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.Empty(t, repo.rates)
}

func TestGetAllByProperty_InactiveFilter(t *testing.T) {
	svc, repo := newTestService()
	repo.rates = []*domain.SeasonalRate{
		{ID: 1, PropertyID: 1, Name: "Active", RateType: domain.RateTypePercentage, IsActive: true},
		{ID: 2, PropertyID: 1, Name: "Retired", RateType: domain.RateTypePercentage, IsActive: false},
	}

	active, err := svc.GetAllByProperty(context.Background(), 1, false)
	require.NoError(t, err)
	assert.Len(t, active.Rates, 1)

	all, err := svc.GetAllByProperty(context.Background(), 1, true)
	require.NoError(t, err)
	assert.Len(t, all.Rates, 2)
}

func TestDeactivate(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.Deactivate(context.Background(), 3))
	assert.Equal(t, int64(3), repo.deactivatedID)

	repo.deactivateErr = rateRepo.ErrRateNotFound
	assert.ErrorIs(t, svc.Deactivate(context.Background(), 4), ErrRateNotFound)
}
