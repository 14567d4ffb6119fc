package engine

import (
	"github.com/emberandoak/staffrota/pkg/core/model"
	"github.com/emberandoak/staffrota/pkg/core/engine/rules"
)

// Issue is a single validation finding. Violations and warnings share the
// shape; severity is decided by which list they land in.
type Issue struct {
	RuleID  model.RuleID
	ShiftID string
	StaffID string
	Message string
	Details map[string]string
}

// EvaluateAssignment runs the enabled hard-constraint rules against one
// candidate (staff, slot, shift) triple using the given committed state.
// Returns the first violation or nil. Pure function of its inputs.
func EvaluateAssignment(
	staff model.Staff,
	shift model.ShiftInstance,
	slot model.RoleSlot,
	timeOff []model.TimeOffRequest,
	state *State,
	cfg rules.Config,
) *rules.Violation {
	rctx := rules.Context{
		Staff:   staff,
		Shift:   shift,
		Slot:    slot,
		TimeOff: timeOff,
		View:    state,
		Config:  cfg,
	}
	return rules.Evaluate(rctx, rules.ForConfig(cfg))
}
