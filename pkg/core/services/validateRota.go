package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/engine"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// ValidateRotaStore defines the database operations needed to validate a rota
type ValidateRotaStore interface {
	GetRota(ctx context.Context, rotaID string) (*model.Rota, error)
	ListStaff(ctx context.Context) ([]model.Staff, error)
	ListTimeOffRequests(ctx context.Context) ([]model.TimeOffRequest, error)
}

// ValidateRota re-checks every assignment in the stored rota against the
// hard-constraint set and reports violations and warnings. Read-only; safe
// to poll.
func ValidateRota(
	ctx context.Context,
	store ValidateRotaStore,
	cfg *config.Config,
	logger *zap.Logger,
	rotaID string,
) (engine.ValidationResult, error) {
	logger.Debug("Validating rota", zap.String("rota_id", rotaID))

	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return engine.ValidationResult{}, fmt.Errorf("failed to fetch rota: %w", err)
	}

	result, err := validateSnapshot(ctx, store, cfg, rota)
	if err != nil {
		return engine.ValidationResult{}, err
	}

	logger.Info("Validation completed",
		zap.String("rota_id", rotaID),
		zap.Int("violations", len(result.Violations)),
		zap.Int("warnings", len(result.Warnings)))

	return result, nil
}

// validateSnapshot runs the validation engine over an already loaded rota.
// Shared by ValidateRota and the publish gate.
func validateSnapshot(ctx context.Context, store ValidateRotaStore, cfg *config.Config, rota *model.Rota) (engine.ValidationResult, error) {
	staff, err := store.ListStaff(ctx)
	if err != nil {
		return engine.ValidationResult{}, fmt.Errorf("failed to fetch staff: %w", err)
	}

	timeOff, err := store.ListTimeOffRequests(ctx)
	if err != nil {
		return engine.ValidationResult{}, fmt.Errorf("failed to fetch time-off requests: %w", err)
	}

	ruleCfg, err := engineRuleConfig(cfg)
	if err != nil {
		return engine.ValidationResult{}, err
	}

	closures, err := closureDatesForWeek(cfg, rota.WeekStartDate)
	if err != nil {
		return engine.ValidationResult{}, fmt.Errorf("failed to expand closure dates: %w", err)
	}

	return engine.Validate(engine.ValidationInput{
		Rota:              rota,
		Staff:             staff,
		TimeOff:           timeOff,
		Config:            ruleCfg,
		SoftWeeklyMinutes: int(cfg.Limits.SoftWeeklyHoursWarning * 60),
		ShiftLaborBudget:  cfg.Limits.ShiftLaborBudget,
		ClosureDates:      closures,
	}), nil
}
