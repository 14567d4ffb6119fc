package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/engine"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// GenerateRotaStore defines the database operations needed to generate a rota
type GenerateRotaStore interface {
	ListStaff(ctx context.Context) ([]model.Staff, error)
	ListShiftTemplates(ctx context.Context) ([]model.ShiftTemplate, error)
	ListTimeOffRequests(ctx context.Context) ([]model.TimeOffRequest, error)
	CreateRota(ctx context.Context, rota *model.Rota) error
}

// GenerateRota expands the active templates onto the requested week,
// auto-assigns staff when enabled, and persists the draft rota.
// If dryRun is true the draft is returned but not saved.
func GenerateRota(
	ctx context.Context,
	store GenerateRotaStore,
	cfg *config.Config,
	logger *zap.Logger,
	opts engine.GenerationOptions,
	dryRun bool,
) (*engine.GenerationResult, error) {
	logger.Info("Generating rota",
		zap.String("week_start", model.FormatDate(opts.WeekStartDate)),
		zap.Bool("auto_assign", opts.AutoAssignStaff),
		zap.Bool("dry_run", dryRun))

	logger.Debug("Fetching staff roster")
	staff, err := store.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	logger.Debug("Found staff", zap.Int("count", len(staff)))

	logger.Debug("Fetching shift templates")
	templates, err := store.ListShiftTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift templates: %w", err)
	}
	logger.Debug("Found templates", zap.Int("count", len(templates)))

	logger.Debug("Fetching time-off requests")
	timeOff, err := store.ListTimeOffRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time-off requests: %w", err)
	}
	logger.Debug("Found time-off requests", zap.Int("count", len(timeOff)))

	ruleCfg, err := engineRuleConfig(cfg)
	if err != nil {
		return nil, err
	}

	closures, err := closureDatesForWeek(cfg, opts.WeekStartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to expand closure dates: %w", err)
	}
	logger.Debug("Closure dates in target week", zap.Int("count", len(closures)))

	result, err := engine.Generate(engine.GenerationInput{
		Options:      opts,
		Staff:        staff,
		Templates:    templates,
		TimeOff:      timeOff,
		Config:       ruleCfg,
		Weights:      scoringWeights(cfg),
		ClosureDates: closures,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("Generation completed",
		zap.String("rota_id", result.Rota.ID),
		zap.Int("shifts", len(result.Rota.Shifts)),
		zap.Int("slots_requested", result.Summary.SlotsRequested),
		zap.Int("slots_filled", result.Summary.SlotsFilled),
		zap.Int("candidates_considered", result.Summary.CandidatesConsidered),
		zap.Duration("elapsed", result.Summary.Elapsed),
		zap.Int("warnings", len(result.Warnings)))

	if dryRun {
		logger.Info("Dry run - rota not saved")
		return result, nil
	}

	if err := store.CreateRota(ctx, result.Rota); err != nil {
		return nil, fmt.Errorf("failed to save rota: %w", err)
	}
	logger.Info("Rota saved", zap.String("rota_id", result.Rota.ID))

	return result, nil
}
