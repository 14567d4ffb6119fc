package engine

import (
	"fmt"
	"time"

	"github.com/emberandoak/staffrota/pkg/core/engine/rules"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// ValidationResult reports hard-constraint violations and advisory warnings
// found in a stored rota.
type ValidationResult struct {
	Violations []Issue
	Warnings   []Issue
}

// Valid reports whether the rota carries no violations. Warnings do not
// block publication.
func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

// ValidationInput is the snapshot a validation pass consumes
type ValidationInput struct {
	Rota    *model.Rota
	Staff   []model.Staff
	TimeOff []model.TimeOffRequest
	Config  rules.Config

	// SoftWeeklyMinutes warns when a staff member's weekly total exceeds
	// it. Zero disables the warning.
	SoftWeeklyMinutes int

	// ShiftLaborBudget warns when a shift's realized labor cost exceeds
	// it. Zero disables the warning.
	ShiftLaborBudget float64

	// ClosureDates flag shifts scheduled on days the restaurant is closed
	ClosureDates []time.Time
}

// Validate re-checks every committed assignment against the full
// hard-constraint set and collects advisory warnings. Side-effect-free and
// idempotent: repeated calls over the same rota return identical results.
func Validate(input ValidationInput) ValidationResult {
	result := ValidationResult{Violations: []Issue{}, Warnings: []Issue{}}

	staffByID := make(map[string]model.Staff, len(input.Staff))
	for _, st := range input.Staff {
		staffByID[st.ID] = st
	}

	state := StateFromRota(input.Rota, input.Staff)
	ruleSet := rules.ForConfig(input.Config)

	closed := make(map[string]bool, len(input.ClosureDates))
	for _, c := range input.ClosureDates {
		closed[model.FormatDate(c)] = true
	}

	for _, shift := range input.Rota.Shifts {
		if closed[model.FormatDate(shift.Date)] {
			result.Warnings = append(result.Warnings, Issue{
				RuleID:  WarnClosureDateShift,
				ShiftID: shift.ID,
				Message: fmt.Sprintf("shift scheduled on closure date %s", model.FormatDate(shift.Date)),
			})
		}

		shiftCost := 0.0

		for _, slot := range shift.RoleSlots {
			if len(slot.AssignedStaffIDs) > slot.RequiredCount {
				result.Violations = append(result.Violations, Issue{
					RuleID:  model.RuleSlotOverCapacity,
					ShiftID: shift.ID,
					Message: fmt.Sprintf("%s slot holds %d staff but requires %d", slot.Role, len(slot.AssignedStaffIDs), slot.RequiredCount),
				})
			}

			if open := slot.OpenPositions(); open > 0 {
				result.Warnings = append(result.Warnings, Issue{
					RuleID:  WarnUnderstaffed,
					ShiftID: shift.ID,
					Message: fmt.Sprintf("%s slot on %s filled %d of %d", slot.Role, model.FormatDate(shift.Date), len(slot.AssignedStaffIDs), slot.RequiredCount),
				})
			}

			for _, staffID := range slot.AssignedStaffIDs {
				staff, known := staffByID[staffID]
				if !known {
					result.Violations = append(result.Violations, Issue{
						RuleID:  model.RuleUnknownStaff,
						ShiftID: shift.ID,
						StaffID: staffID,
						Message: fmt.Sprintf("assigned staff %s is not in the roster", staffID),
					})
					continue
				}

				shiftCost += float64(shift.DurationMinutes()) / 60 * staff.HourlyRate

				rctx := rules.Context{
					Staff:   staff,
					Shift:   shift,
					Slot:    slot,
					TimeOff: input.TimeOff,
					View:    state,
					Config:  input.Config,
				}
				if v := rules.Evaluate(rctx, ruleSet); v != nil {
					result.Violations = append(result.Violations, Issue{
						RuleID:  v.RuleID,
						ShiftID: shift.ID,
						StaffID: staffID,
						Message: v.Message,
					})
				}
			}
		}

		if input.ShiftLaborBudget > 0 && shiftCost > input.ShiftLaborBudget {
			result.Warnings = append(result.Warnings, Issue{
				RuleID:  WarnLaborBudgetExceeded,
				ShiftID: shift.ID,
				Message: fmt.Sprintf("shift labor cost %.2f exceeds budget %.2f", shiftCost, input.ShiftLaborBudget),
			})
		}
	}

	if input.SoftWeeklyMinutes > 0 {
		result.Warnings = append(result.Warnings, softHourWarnings(input.Rota, input.Staff, input.SoftWeeklyMinutes)...)
	}

	return result
}

// softHourWarnings flags staff whose weekly totals exceed the soft
// threshold. Ordered by the roster's stored order for idempotent output.
func softHourWarnings(rota *model.Rota, staff []model.Staff, softMinutes int) []Issue {
	totals := AggregateHours(rota, staff)

	var warnings []Issue
	for _, st := range staff {
		agg, ok := totals[st.ID]
		if !ok {
			continue
		}
		if agg.Hours*60 > float64(softMinutes) {
			warnings = append(warnings, Issue{
				RuleID:  WarnSoftHoursExceeded,
				StaffID: st.ID,
				Message: fmt.Sprintf("%s works %.1fh this week, above the %.1fh soft threshold", st.ID, agg.Hours, float64(softMinutes)/60),
			})
		}
	}
	return warnings
}
