package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/flood_response_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDashboardRepo - настраиваемая заглушка репозитория дашборда
type fakeDashboardRepo struct {
	supplies  []models.SupplyTotals
	vehicles  []models.GroupAvailability
	personnel []models.GroupAvailability
	shelters  *models.ShelterStats
	err       error
}

func (f *fakeDashboardRepo) SupplyTotals(context.Context) ([]models.SupplyTotals, error) {
	return f.supplies, f.err
}

func (f *fakeDashboardRepo) VehicleAvailability(context.Context) ([]models.GroupAvailability, error) {
	return f.vehicles, f.err
}

func (f *fakeDashboardRepo) PersonnelAvailability(context.Context) ([]models.GroupAvailability, error) {
	return f.personnel, f.err
}

func (f *fakeDashboardRepo) ShelterStats(context.Context) (*models.ShelterStats, error) {
	return f.shelters, f.err
}

func newTestDashboardService(repo *fakeDashboardRepo) DashboardService {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewDashboardService(repo, logger)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, float64(30), percentage(30, 100))
	assert.Equal(t, float64(100), percentage(5, 5))
	assert.Equal(t, 66.67, percentage(2, 3))
	assert.Equal(t, 0.0, percentage(0, 0))
	assert.Equal(t, 0.0, percentage(10, 0))
	assert.Equal(t, 0.0, percentage(10, -1))
}

func TestStatusFor_Boundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100, "adequate"},
		{60, "adequate"},
		{59.99, "low"},
		{30, "low"},
		{29.99, "critical"},
		{0, "critical"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.percent), "percent %v", tt.percent)
	}
}

func TestSummary_SupplyRows(t *testing.T) {
	repo := &fakeDashboardRepo{
		supplies: []models.SupplyTotals{
			{ItemName: "Drinking Water", Current: 30, Capacity: 100},
			{ItemName: "Medical Kits", Current: 90, Capacity: 100},
			{ItemName: "Rice Bags", Current: 10, Capacity: 100},
		},
		shelters: &models.ShelterStats{},
	}
	svc := newTestDashboardService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Supplies, 3)

	water := summary.Supplies[0]
	assert.Equal(t, "Drinking Water", water.Name)
	assert.Equal(t, int64(30), water.Current)
	assert.Equal(t, int64(100), water.Total)
	assert.Equal(t, "units", water.Unit)
	assert.Equal(t, float64(30), water.Percentage)
	assert.Equal(t, "low", water.Status)
	require.NotNil(t, water.NeedsReplenishment)
	assert.True(t, *water.NeedsReplenishment)

	kits := summary.Supplies[1]
	assert.Equal(t, "adequate", kits.Status)
	require.NotNil(t, kits.NeedsReplenishment)
	assert.False(t, *kits.NeedsReplenishment)

	rice := summary.Supplies[2]
	assert.Equal(t, "critical", rice.Status)
	require.NotNil(t, rice.NeedsReplenishment)
	assert.True(t, *rice.NeedsReplenishment)
}

func TestSummary_VehicleAndPersonnelRows(t *testing.T) {
	repo := &fakeDashboardRepo{
		vehicles: []models.GroupAvailability{
			{Name: "boat", Total: 4, Available: 3},
		},
		personnel: []models.GroupAvailability{
			{Name: "medic", Total: 10, Available: 2},
		},
		shelters: &models.ShelterStats{},
	}
	svc := newTestDashboardService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Vehicles, 1)
	boat := summary.Vehicles[0]
	assert.Equal(t, "boat", boat.Name)
	assert.Equal(t, int64(3), boat.Current)
	assert.Equal(t, int64(4), boat.Total)
	assert.Equal(t, "vehicles", boat.Unit)
	assert.Equal(t, float64(75), boat.Percentage)
	assert.Equal(t, "adequate", boat.Status)
	// У транспорта флаг пополнения не выставляется
	assert.Nil(t, boat.NeedsReplenishment)

	require.Len(t, summary.Personnel, 1)
	medic := summary.Personnel[0]
	assert.Equal(t, "people", medic.Unit)
	assert.Equal(t, float64(20), medic.Percentage)
	assert.Equal(t, "critical", medic.Status)
	require.NotNil(t, medic.NeedsReplenishment)
	assert.True(t, *medic.NeedsReplenishment)
}

func TestSummary_ShelterRows(t *testing.T) {
	repo := &fakeDashboardRepo{
		shelters: &models.ShelterStats{
			Total:               5,
			Operational:         3,
			OperationalCapacity: 1200,
		},
	}
	svc := newTestDashboardService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Shelters, 2)

	centers := summary.Shelters[0]
	assert.Equal(t, "Evacuation Centers", centers.Name)
	assert.Equal(t, int64(3), centers.Current)
	assert.Equal(t, int64(5), centers.Total)
	assert.Equal(t, "centers", centers.Unit)
	assert.Equal(t, float64(60), centers.Percentage)
	assert.Equal(t, "adequate", centers.Status)

	capacity := summary.Shelters[1]
	assert.Equal(t, "Capacity (People)", capacity.Name)
	assert.Equal(t, int64(1200), capacity.Current)
	assert.Equal(t, int64(1200), capacity.Total)
	assert.Equal(t, "people", capacity.Unit)
	assert.Equal(t, float64(100), capacity.Percentage)
	assert.Equal(t, "adequate", capacity.Status)
}

func TestSummary_ShelterRowsBelowThreshold(t *testing.T) {
	repo := &fakeDashboardRepo{
		shelters: &models.ShelterStats{
			Total:       5,
			Operational: 2,
		},
	}
	svc := newTestDashboardService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "low", summary.Shelters[0].Status)
}

func TestSummary_EmptyGroups(t *testing.T) {
	repo := &fakeDashboardRepo{
		shelters: &models.ShelterStats{},
	}
	svc := newTestDashboardService(repo)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Empty(t, summary.Supplies)
	assert.Empty(t, summary.Vehicles)
	assert.Empty(t, summary.Personnel)

	// Пустая база: нулевые проценты, но строка вместимости остается 100%
	require.Len(t, summary.Shelters, 2)
	assert.Equal(t, float64(0), summary.Shelters[0].Percentage)
	assert.Equal(t, "low", summary.Shelters[0].Status)
	assert.Equal(t, float64(100), summary.Shelters[1].Percentage)
}

func TestSummary_RepoError(t *testing.T) {
	repo := &fakeDashboardRepo{err: errors.New("db down")}
	svc := newTestDashboardService(repo)

	summary, err := svc.Summary(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary)
}
