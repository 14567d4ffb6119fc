package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

func TestCreateRota_Success(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()

	rota, err := CreateRota(ctx, store, zap.NewNop(), weekStart)
	require.NoError(t, err)

	assert.NotEmpty(t, rota.ID)
	assert.Equal(t, model.RotaDraft, rota.Status)
	assert.Equal(t, 1, rota.Version)
	assert.Empty(t, rota.Shifts)
	assert.Contains(t, store.rotas, rota.ID)
}

func TestCreateRota_NonMonday(t *testing.T) {
	store := newMockStore()

	_, err := CreateRota(context.Background(), store, zap.NewNop(), weekStart.AddDate(0, 0, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a Monday")
	assert.Zero(t, store.createCalls)
}

func TestAddShift_Success(t *testing.T) {
	ctx := context.Background()
	store := assignFixture()

	shift, err := AddShift(ctx, store, config.Default(), zap.NewNop(), "rota-1",
		weekStart.AddDate(0, 0, 2),
		model.MustParseClock("18:00"), model.MustParseClock("23:00"),
		[]model.RoleRequirement{{Role: model.RoleBartender, Count: 1}})
	require.NoError(t, err)

	assert.NotEmpty(t, shift.ID)
	assert.Empty(t, shift.SourceTemplateID)

	saved := store.rotas["rota-1"]
	require.Len(t, saved.Shifts, 2)
	assert.Equal(t, model.RoleBartender, saved.Shifts[1].RoleSlots[0].Role)
	assert.Equal(t, 2, saved.Version)
}

func TestAddShift_DurationBelowMinimum(t *testing.T) {
	store := assignFixture()

	_, err := AddShift(context.Background(), store, config.Default(), zap.NewNop(), "rota-1",
		weekStart,
		model.MustParseClock("09:00"), model.MustParseClock("10:00"),
		[]model.RoleRequirement{{Role: model.RoleServer, Count: 1}})

	cv, ok := model.IsConstraintViolation(err)
	require.True(t, ok)
	assert.Equal(t, model.RuleDurationOutOfBounds, cv.RuleID)
	assert.Zero(t, store.saveCalls)
}

func TestAddShift_OvernightDurationAccepted(t *testing.T) {
	store := assignFixture()

	_, err := AddShift(context.Background(), store, config.Default(), zap.NewNop(), "rota-1",
		weekStart,
		model.MustParseClock("22:00"), model.MustParseClock("02:00"),
		[]model.RoleRequirement{{Role: model.RoleBartender, Count: 1}})
	assert.NoError(t, err)
}

func TestAddShift_DateOutsideWeek(t *testing.T) {
	store := assignFixture()

	_, err := AddShift(context.Background(), store, config.Default(), zap.NewNop(), "rota-1",
		weekStart.AddDate(0, 0, 7), // the following Monday
		model.MustParseClock("09:00"), model.MustParseClock("17:00"),
		[]model.RoleRequirement{{Role: model.RoleServer, Count: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the rota week")
}

func TestAddShift_ImmutableRota(t *testing.T) {
	store := assignFixture()
	store.rotas["rota-1"].Status = model.RotaPublished

	_, err := AddShift(context.Background(), store, config.Default(), zap.NewNop(), "rota-1",
		weekStart,
		model.MustParseClock("09:00"), model.MustParseClock("17:00"),
		[]model.RoleRequirement{{Role: model.RoleServer, Count: 1}})
	assert.ErrorIs(t, err, model.ErrImmutableRota)
}

func TestAddShift_RequiresRoleRequirements(t *testing.T) {
	store := assignFixture()

	_, err := AddShift(context.Background(), store, config.Default(), zap.NewNop(), "rota-1",
		weekStart,
		model.MustParseClock("09:00"), model.MustParseClock("17:00"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role requirement")
}

func TestAddShift_RejectsInvalidRole(t *testing.T) {
	store := assignFixture()

	_, err := AddShift(context.Background(), store, config.Default(), zap.NewNop(), "rota-1",
		weekStart,
		model.MustParseClock("09:00"), model.MustParseClock("17:00"),
		[]model.RoleRequirement{{Role: "sommelier", Count: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")
}

func TestRemoveShift_Success(t *testing.T) {
	store := assignFixture()

	err := RemoveShift(context.Background(), store, zap.NewNop(), "rota-1", "sh1")
	require.NoError(t, err)

	saved := store.rotas["rota-1"]
	assert.Empty(t, saved.Shifts)
	assert.Equal(t, 2, saved.Version)
}

func TestRemoveShift_NotFound(t *testing.T) {
	store := assignFixture()

	err := RemoveShift(context.Background(), store, zap.NewNop(), "rota-1", "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRemoveShift_ImmutableRota(t *testing.T) {
	store := assignFixture()
	store.rotas["rota-1"].Status = model.RotaArchived

	err := RemoveShift(context.Background(), store, zap.NewNop(), "rota-1", "sh1")
	assert.ErrorIs(t, err, model.ErrImmutableRota)
}
