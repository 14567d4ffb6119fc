package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/engine"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// LifecycleStore defines the database operations needed for rota lifecycle transitions
type LifecycleStore interface {
	GetRota(ctx context.Context, rotaID string) (*model.Rota, error)
	ListStaff(ctx context.Context) ([]model.Staff, error)
	ListTimeOffRequests(ctx context.Context) ([]model.TimeOffRequest, error)
	SaveRota(ctx context.Context, rota *model.Rota, expectedVersion int) error
	DeleteRota(ctx context.Context, rotaID string) error
}

// PublishRota validates the rota and, when no violations remain, flips it
// from draft to published under the version check. Violations reject the
// publish with ErrValidationFailed; the validation result is returned
// either way so the caller can report what blocked it.
func PublishRota(
	ctx context.Context,
	store LifecycleStore,
	cfg *config.Config,
	logger *zap.Logger,
	rotaID string,
) (engine.ValidationResult, error) {
	logger.Info("Publishing rota", zap.String("rota_id", rotaID))

	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return engine.ValidationResult{}, fmt.Errorf("failed to fetch rota: %w", err)
	}

	if rota.Status != model.RotaDraft {
		return engine.ValidationResult{}, fmt.Errorf("rota %s is %s: %w", rotaID, rota.Status, model.ErrImmutableRota)
	}

	result, err := validateSnapshot(ctx, store, cfg, rota)
	if err != nil {
		return engine.ValidationResult{}, err
	}

	if !result.Valid() {
		logger.Warn("Publish rejected",
			zap.String("rota_id", rotaID),
			zap.Int("violations", len(result.Violations)))
		return result, fmt.Errorf("rota %s has %d violations: %w", rotaID, len(result.Violations), model.ErrValidationFailed)
	}

	rota.Status = model.RotaPublished
	if err := store.SaveRota(ctx, rota, rota.Version); err != nil {
		return result, fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Rota published", zap.String("rota_id", rotaID), zap.Int("version", rota.Version))
	return result, nil
}

// UnpublishRota reverts a published rota to draft so it can be mutated
// again. Archived rotas are terminal.
func UnpublishRota(ctx context.Context, store LifecycleStore, logger *zap.Logger, rotaID string) error {
	logger.Info("Unpublishing rota", zap.String("rota_id", rotaID))

	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return fmt.Errorf("failed to fetch rota: %w", err)
	}

	if rota.Status != model.RotaPublished {
		return fmt.Errorf("rota %s is %s, only published rotas can be unpublished: %w", rotaID, rota.Status, model.ErrImmutableRota)
	}

	rota.Status = model.RotaDraft
	if err := store.SaveRota(ctx, rota, rota.Version); err != nil {
		return fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Rota reverted to draft", zap.String("rota_id", rotaID), zap.Int("version", rota.Version))
	return nil
}

// ArchiveRota moves a draft or published rota into the terminal archived state
func ArchiveRota(ctx context.Context, store LifecycleStore, logger *zap.Logger, rotaID string) error {
	logger.Info("Archiving rota", zap.String("rota_id", rotaID))

	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return fmt.Errorf("failed to fetch rota: %w", err)
	}

	if rota.Status == model.RotaArchived {
		return fmt.Errorf("rota %s is already archived: %w", rotaID, model.ErrImmutableRota)
	}

	rota.Status = model.RotaArchived
	if err := store.SaveRota(ctx, rota, rota.Version); err != nil {
		return fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Rota archived", zap.String("rota_id", rotaID))
	return nil
}

// DeleteRota destroys a rota. Only drafts may be deleted.
func DeleteRota(ctx context.Context, store LifecycleStore, logger *zap.Logger, rotaID string) error {
	logger.Info("Deleting rota", zap.String("rota_id", rotaID))

	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return fmt.Errorf("failed to fetch rota: %w", err)
	}

	if rota.Status != model.RotaDraft {
		return fmt.Errorf("rota %s is %s, only drafts can be deleted: %w", rotaID, rota.Status, model.ErrImmutableRota)
	}

	if err := store.DeleteRota(ctx, rotaID); err != nil {
		return fmt.Errorf("failed to delete rota: %w", err)
	}

	logger.Info("Rota deleted", zap.String("rota_id", rotaID))
	return nil
}
