package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
)

// BulkAssignment is one requested assignment within a bulk call
type BulkAssignment struct {
	ShiftID string
	StaffID string
}

// BulkAssignResult is the per-item outcome of a bulk assignment
type BulkAssignResult struct {
	ShiftID string
	StaffID string
	OK      bool
	Err     error
}

// BulkAssignStaff applies each assignment independently through the
// single-assignment contract. A failing item never rolls back or aborts its
// siblings; the caller reacts to the per-item results.
func BulkAssignStaff(
	ctx context.Context,
	store AssignStore,
	cfg *config.Config,
	logger *zap.Logger,
	rotaID string,
	assignments []BulkAssignment,
) []BulkAssignResult {
	logger.Info("Bulk assigning staff",
		zap.String("rota_id", rotaID),
		zap.Int("count", len(assignments)))

	results := make([]BulkAssignResult, 0, len(assignments))
	succeeded := 0

	for _, a := range assignments {
		err := AssignStaffToShift(ctx, store, cfg, logger, rotaID, a.ShiftID, a.StaffID)
		if err != nil {
			logger.Warn("Bulk assignment item failed",
				zap.String("shift_id", a.ShiftID),
				zap.String("staff_id", a.StaffID),
				zap.Error(err))
		} else {
			succeeded++
		}
		results = append(results, BulkAssignResult{
			ShiftID: a.ShiftID,
			StaffID: a.StaffID,
			OK:      err == nil,
			Err:     err,
		})
	}

	logger.Info("Bulk assignment completed",
		zap.String("rota_id", rotaID),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", len(assignments)-succeeded))

	return results
}
