package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

func TestGetStaffRecommendations_RanksEligibleServers(t *testing.T) {
	ctx := context.Background()
	store := assignFixture()
	store.staff = append(store.staff,
		model.Staff{ID: "dana", Role: model.RoleServer, HourlyRate: 10, MaxHoursPerWeek: 40, AvailableDays: fullWeek(), IsActive: true},
		model.Staff{ID: "ed", Role: model.RoleServer, HourlyRate: 16, MaxHoursPerWeek: 40, AvailableDays: fullWeek(), IsActive: true},
	)

	recs, err := GetStaffRecommendations(ctx, store, config.Default(), zap.NewNop(), "rota-1", "sh1", model.RoleServer)
	require.NoError(t, err)

	// Four eligible servers, capped at three recommendations
	require.Len(t, recs, 3)
	for _, rec := range recs {
		assert.NotEmpty(t, rec.Tier)
		assert.NotEmpty(t, rec.TopStrengths)
		assert.GreaterOrEqual(t, rec.Percentage, 0.0)
		assert.LessOrEqual(t, rec.Percentage, 100.0)
	}
	// Descending by total score
	assert.GreaterOrEqual(t, recs[0].TotalScore, recs[1].TotalScore)
	assert.GreaterOrEqual(t, recs[1].TotalScore, recs[2].TotalScore)
}

func TestGetStaffRecommendations_HardConstraintsFilter(t *testing.T) {
	ctx := context.Background()
	store := assignFixture()
	store.timeOff = []model.TimeOffRequest{{
		ID:        "to-1",
		StaffID:   "alice",
		StartDate: weekStart,
		EndDate:   weekStart,
		Status:    model.TimeOffApproved,
	}}

	recs, err := GetStaffRecommendations(ctx, store, config.Default(), zap.NewNop(), "rota-1", "sh1", model.RoleServer)
	require.NoError(t, err)

	// alice is on approved leave and must not appear at all
	for _, rec := range recs {
		assert.NotEqual(t, "alice", rec.StaffID)
	}
	require.Len(t, recs, 1)
	assert.Equal(t, "bob", recs[0].StaffID)
}

func TestGetStaffRecommendations_NoEligibleStaff(t *testing.T) {
	ctx := context.Background()
	store := assignFixture()
	// Everyone unavailable on Mondays
	for i := range store.staff {
		store.staff[i].AvailableDays = []time.Weekday{time.Saturday}
	}

	recs, err := GetStaffRecommendations(ctx, store, config.Default(), zap.NewNop(), "rota-1", "sh1", model.RoleServer)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGetStaffRecommendations_UnknownSlotRole(t *testing.T) {
	store := assignFixture()

	_, err := GetStaffRecommendations(context.Background(), store, config.Default(), zap.NewNop(), "rota-1", "sh1", model.RoleBartender)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetStaffRecommendations_ShiftNotFound(t *testing.T) {
	store := assignFixture()

	_, err := GetStaffRecommendations(context.Background(), store, config.Default(), zap.NewNop(), "rota-1", "missing", model.RoleServer)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
