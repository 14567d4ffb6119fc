package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/engine/rules"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// CreateRotaStore defines the database operations needed to create rotas and shifts
type CreateRotaStore interface {
	GetRota(ctx context.Context, rotaID string) (*model.Rota, error)
	CreateRota(ctx context.Context, rota *model.Rota) error
	SaveRota(ctx context.Context, rota *model.Rota, expectedVersion int) error
}

// CreateRota creates an empty draft rota for the given Monday, for manual
// shift building without templates.
func CreateRota(
	ctx context.Context,
	store CreateRotaStore,
	logger *zap.Logger,
	weekStartDate time.Time,
) (*model.Rota, error) {
	weekStart := model.DateOnly(weekStartDate)
	if !model.IsMonday(weekStart) {
		return nil, fmt.Errorf("week start %s is not a Monday", model.FormatDate(weekStart))
	}

	rota := &model.Rota{
		ID:            uuid.New().String(),
		WeekStartDate: weekStart,
		Status:        model.RotaDraft,
		Version:       1,
	}

	if err := store.CreateRota(ctx, rota); err != nil {
		return nil, fmt.Errorf("failed to create rota: %w", err)
	}

	logger.Info("Rota created",
		zap.String("rota_id", rota.ID),
		zap.String("week_start", model.FormatDate(weekStart)))

	return rota, nil
}

// AddShift appends a manually defined shift to a draft rota. The shift
// carries no source template; its duration is checked against the
// configured bounds at creation, per the duration rule.
func AddShift(
	ctx context.Context,
	store CreateRotaStore,
	cfg *config.Config,
	logger *zap.Logger,
	rotaID string,
	date time.Time,
	start, end model.ClockTime,
	requirements []model.RoleRequirement,
) (*model.ShiftInstance, error) {
	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rota: %w", err)
	}

	if !rota.IsMutable() {
		return nil, fmt.Errorf("rota %s is %s: %w", rotaID, rota.Status, model.ErrImmutableRota)
	}

	day := model.DateOnly(date)
	weekEnd := rota.WeekStartDate.AddDate(0, 0, 7)
	if day.Before(rota.WeekStartDate) || !day.Before(weekEnd) {
		return nil, fmt.Errorf("date %s is outside the rota week starting %s",
			model.FormatDate(day), model.FormatDate(rota.WeekStartDate))
	}

	ruleCfg, err := engineRuleConfig(cfg)
	if err != nil {
		return nil, err
	}
	if v := rules.CheckDuration(start, end, ruleCfg); v != nil {
		return nil, &model.ConstraintViolationError{RuleID: v.RuleID, Message: v.Message}
	}

	if len(requirements) == 0 {
		return nil, fmt.Errorf("shift needs at least one role requirement")
	}

	shift := model.ShiftInstance{
		ID:        uuid.New().String(),
		Date:      day,
		StartTime: start,
		EndTime:   end,
	}
	for _, req := range requirements {
		if !req.Role.IsValid() {
			return nil, fmt.Errorf("invalid role %q", req.Role)
		}
		if req.Count <= 0 {
			return nil, fmt.Errorf("role %s requires a positive count", req.Role)
		}
		shift.RoleSlots = append(shift.RoleSlots, model.RoleSlot{
			Role:          req.Role,
			RequiredCount: req.Count,
		})
	}

	rota.Shifts = append(rota.Shifts, shift)

	if err := store.SaveRota(ctx, rota, rota.Version); err != nil {
		return nil, fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Shift added",
		zap.String("rota_id", rotaID),
		zap.String("shift_id", shift.ID),
		zap.String("date", model.FormatDate(day)))

	return &shift, nil
}

// RemoveShift deletes a shift from a draft rota
func RemoveShift(
	ctx context.Context,
	store CreateRotaStore,
	logger *zap.Logger,
	rotaID, shiftID string,
) error {
	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return fmt.Errorf("failed to fetch rota: %w", err)
	}

	if !rota.IsMutable() {
		return fmt.Errorf("rota %s is %s: %w", rotaID, rota.Status, model.ErrImmutableRota)
	}

	found := false
	for i := range rota.Shifts {
		if rota.Shifts[i].ID == shiftID {
			rota.Shifts = append(rota.Shifts[:i], rota.Shifts[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("shift %s: %w", shiftID, model.ErrNotFound)
	}

	if err := store.SaveRota(ctx, rota, rota.Version); err != nil {
		return fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Shift removed",
		zap.String("rota_id", rotaID),
		zap.String("shift_id", shiftID))

	return nil
}
