package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/engine"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// AssignStore defines the database operations needed for assignment mutations
type AssignStore interface {
	GetRota(ctx context.Context, rotaID string) (*model.Rota, error)
	ListStaff(ctx context.Context) ([]model.Staff, error)
	ListTimeOffRequests(ctx context.Context) ([]model.TimeOffRequest, error)
	SaveRota(ctx context.Context, rota *model.Rota, expectedVersion int) error
}

// AssignStaffToShift re-runs the constraint evaluator against the live rota
// state and, on pass, adds the staff member to the matching role slot and
// bumps the rota version. On failure the specific violated rule is returned
// and nothing changes.
func AssignStaffToShift(
	ctx context.Context,
	store AssignStore,
	cfg *config.Config,
	logger *zap.Logger,
	rotaID, shiftID, staffID string,
) error {
	logger.Debug("Assigning staff to shift",
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

	staff, err := findStaff(ctx, store, staffID)
	if err != nil {
		return err
	}

	if shift.HasStaff(staffID) {
		return &model.ConstraintViolationError{
			RuleID:  model.RuleDoubleBooking,
			Message: fmt.Sprintf("%s is already assigned to shift %s", staffID, shiftID),
		}
	}

	slot, err := pickSlot(shift, staff, cfg)
	if err != nil {
		return err
	}

	timeOff, err := store.ListTimeOffRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch time-off requests: %w", err)
	}

	roster, err := store.ListStaff(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch staff: %w", err)
	}

	ruleCfg, err := engineRuleConfig(cfg)
	if err != nil {
		return err
	}

	state := engine.StateFromRota(rota, roster)
	if v := engine.EvaluateAssignment(staff, *shift, *slot, timeOff, state, ruleCfg); v != nil {
		return &model.ConstraintViolationError{RuleID: v.RuleID, Message: v.Message}
	}

	slot.AssignedStaffIDs = append(slot.AssignedStaffIDs, staffID)

	if err := store.SaveRota(ctx, rota, rota.Version); err != nil {
		return fmt.Errorf("failed to save rota: %w", err)
	}

	logger.Info("Staff assigned",
		zap.String("rota_id", rotaID),
		zap.String("shift_id", shiftID),
		zap.String("staff_id", staffID),
		zap.Int("version", rota.Version))

	return nil
}

// findStaff resolves a staff id against the roster
func findStaff(ctx context.Context, store AssignStore, staffID string) (model.Staff, error) {
	roster, err := store.ListStaff(ctx)
	if err != nil {
		return model.Staff{}, fmt.Errorf("failed to fetch staff: %w", err)
	}
	for _, st := range roster {
		if st.ID == staffID {
			return st, nil
		}
	}
	return model.Staff{}, fmt.Errorf("staff %s: %w", staffID, model.ErrNotFound)
}

// pickSlot chooses the slot the staff member would fill: the first open
// slot matching their role, or any open slot when role qualification is not
// enforced. A full matching slot rejects with SlotOverCapacity, a missing
// one with RoleMismatch.
func pickSlot(shift *model.ShiftInstance, staff model.Staff, cfg *config.Config) (*model.RoleSlot, error) {
	var matchingFull bool
	for i := range shift.RoleSlots {
		slot := &shift.RoleSlots[i]
		if slot.Role != staff.Role {
			continue
		}
		if slot.IsFull() {
			matchingFull = true
			continue
		}
		return slot, nil
	}

	if matchingFull {
		return nil, &model.ConstraintViolationError{
			RuleID:  model.RuleSlotOverCapacity,
			Message: fmt.Sprintf("every %s slot on shift %s is already full", staff.Role, shift.ID),
		}
	}

	if !cfg.Enforcement.RoleQualification {
		for i := range shift.RoleSlots {
			if !shift.RoleSlots[i].IsFull() {
				return &shift.RoleSlots[i], nil
			}
		}
		return nil, &model.ConstraintViolationError{
			RuleID:  model.RuleSlotOverCapacity,
			Message: fmt.Sprintf("every slot on shift %s is already full", shift.ID),
		}
	}

	return nil, &model.ConstraintViolationError{
		RuleID:  model.RuleRoleMismatch,
		Message: fmt.Sprintf("shift %s has no %s slot", shift.ID, staff.Role),
	}
}
