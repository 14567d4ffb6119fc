package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// RemoveStaffStore defines the database operations needed to remove an assignment
type RemoveStaffStore interface {
	GetRota(ctx context.Context, rotaID string) (*model.Rota, error)
	SaveRota(ctx context.Context, rota *model.Rota, expectedVersion int) error
}

// RemoveStaffFromShift removes the staff member from whichever slot of the
// shift they hold. Removal never violates a hard constraint, so it always
// succeeds when the assignment exists and the rota is a draft.
func RemoveStaffFromShift(
	ctx context.Context,
	store RemoveStaffStore,
	logger *zap.Logger,
	rotaID, shiftID, staffID string,
) error {
	logger.Debug("Removing staff from shift",
		zap.String("rota_id", rotaID),
		zap.String("shift_id", shiftID),
		zap.String("staff_id", staffID))

	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return fmt.Errorf("failed to fetch rota: %w", err)
	}

	if !rota.IsMutable() {
		return fmt.Errorf("rota %s is %s: %w", rotaID, rota.Status, model.ErrImmutableRota)
	}

	shift := rota.FindShift(shiftID)
	if shift == nil {
		return fmt.Errorf("shift %s: %w", shiftID, model.ErrNotFound)
	}

	removed := false
	for i := range shift.RoleSlots {
		slot := &shift.RoleSlots[i]
		for j, id := range slot.AssignedStaffIDs {
			if id == staffID {
				slot.AssignedStaffIDs = append(slot.AssignedStaffIDs[:j], slot.AssignedStaffIDs[j+1:]...)
				removed = true
				break
			}
		}
		if removed {
			break
		}
	}

	if !removed {
		return fmt.Errorf("staff %s is not assigned to shift %s: %w", staffID, shiftID, model.ErrNotFound)
	}

	if err := store.SaveRota(ctx, rota, rota.Version); err != nil {
		return fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Staff removed",
		zap.String("rota_id", rotaID),
		zap.String("shift_id", shiftID),
		zap.String("staff_id", staffID),
		zap.Int("version", rota.Version))

	return nil
}
