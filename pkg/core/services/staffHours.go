package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/pkg/core/engine"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// StaffHoursStore defines the database operations needed for hour rollups
type StaffHoursStore interface {
	GetRota(ctx context.Context, rotaID string) (*model.Rota, error)
	ListStaff(ctx context.Context) ([]model.Staff, error)
}

// StaffHours aggregates per-staff weekly hours and labor cost for a stored
// rota. Read-only.
func StaffHours(
	ctx context.Context,
	store StaffHoursStore,
	logger *zap.Logger,
	rotaID string,
) (map[string]engine.StaffHours, error) {
	logger.Debug("Aggregating staff hours", zap.String("rota_id", rotaID))

	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rota: %w", err)
	}

	staff, err := store.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	totals := engine.AggregateHours(rota, staff)

	logger.Debug("Aggregated staff hours",
		zap.String("rota_id", rotaID),
		zap.Int("staff_with_hours", len(totals)))

	return totals, nil
}
