package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/emberandoak/staffrota/pkg/core/engine/rules"
	"github.com/emberandoak/staffrota/pkg/core/engine/scoring"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// Warning ids used by the planner and validator
const (
	WarnUnderstaffed        model.RuleID = "Understaffed"
	WarnSoftHoursExceeded   model.RuleID = "SoftHoursExceeded"
	WarnLaborBudgetExceeded model.RuleID = "LaborBudgetExceeded"
	WarnClosureDateShift    model.RuleID = "ClosureDateShift"
)

// GenerationOptions are the caller-supplied knobs for one generation run
type GenerationOptions struct {
	WeekStartDate   time.Time
	UseTemplates    bool
	AutoAssignStaff bool

	// TemplateIDs restricts expansion to the listed templates when non-empty
	TemplateIDs []string

	// Days restricts expansion to the listed weekdays when non-empty
	Days []time.Weekday
}

// GenerationInput is the full read-only snapshot a generation run consumes
type GenerationInput struct {
	Options   GenerationOptions
	Staff     []model.Staff
	Templates []model.ShiftTemplate
	TimeOff   []model.TimeOffRequest
	Config    rules.Config
	Weights   scoring.Weights

	// ClosureDates are dates within the target week on which no shifts are
	// generated (bank holidays, deep cleans).
	ClosureDates []time.Time
}

// GenerationSummary is caller-side observability for one run
type GenerationSummary struct {
	SlotsRequested       int
	SlotsFilled          int
	CandidatesConsidered int
	Elapsed              time.Duration
}

// GenerationResult is the draft rota plus warnings and run summary
type GenerationResult struct {
	Rota     *model.Rota
	Warnings []Issue
	Summary  GenerationSummary
}

// fillUnit is one position needing a staff member: a (shift, slot, unit)
// tuple in the deterministic fill order.
type fillUnit struct {
	shiftIdx int
	slotIdx  int
	unit     int
	priority int
}

// Generate expands the active templates onto the target week and, when
// auto-assignment is enabled, fills role slots through the constraint
// evaluator and scoring engine. Unfillable positions downgrade to
// understaffed warnings; partial drafts are an accepted outcome.
//
// Given identical snapshots, two runs produce identical assignments: the
// fill order and every tie-break are total orders.
func Generate(input GenerationInput) (*GenerationResult, error) {
	started := time.Now()

	weekStart := model.DateOnly(input.Options.WeekStartDate)
	if !model.IsMonday(weekStart) {
		return nil, fmt.Errorf("week start %s is not a Monday", model.FormatDate(weekStart))
	}

	rota := &model.Rota{
		ID:            uuid.New().String(),
		WeekStartDate: weekStart,
		Status:        model.RotaDraft,
		Version:       1,
	}

	templatesByID := make(map[string]model.ShiftTemplate)

	if input.Options.UseTemplates {
		for _, tmpl := range selectTemplates(input.Options, input.Templates, weekStart, input.ClosureDates) {
			templatesByID[tmpl.ID] = tmpl
			rota.Shifts = append(rota.Shifts, expandTemplate(tmpl, weekStart))
		}
	}

	// Chronological shift order within the rota, template id as the final
	// tie-break so ordering is total.
	sort.Slice(rota.Shifts, func(i, j int) bool {
		a, b := rota.Shifts[i], rota.Shifts[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartTime.Minutes() != b.StartTime.Minutes() {
			return a.StartTime.Minutes() < b.StartTime.Minutes()
		}
		return a.SourceTemplateID < b.SourceTemplateID
	})

	result := &GenerationResult{Rota: rota, Warnings: []Issue{}}

	units := buildFillOrder(rota, templatesByID)
	result.Summary.SlotsRequested = len(units)

	if input.Options.AutoAssignStaff {
		fillUnits(rota, units, templatesByID, input, result)
		result.Warnings = append(result.Warnings, understaffedWarnings(rota)...)
	}

	result.Summary.Elapsed = time.Since(started)
	return result, nil
}

// selectTemplates applies the isActive, template-id, weekday and
// closure-date filters.
func selectTemplates(opts GenerationOptions, templates []model.ShiftTemplate, weekStart time.Time, closures []time.Time) []model.ShiftTemplate {
	wantedIDs := make(map[string]bool, len(opts.TemplateIDs))
	for _, id := range opts.TemplateIDs {
		wantedIDs[id] = true
	}
	wantedDays := make(map[time.Weekday]bool, len(opts.Days))
	for _, d := range opts.Days {
		wantedDays[d] = true
	}
	closed := make(map[string]bool, len(closures))
	for _, c := range closures {
		closed[model.FormatDate(c)] = true
	}

	var selected []model.ShiftTemplate
	for _, tmpl := range templates {
		if !tmpl.IsActive {
			continue
		}
		if len(wantedIDs) > 0 && !wantedIDs[tmpl.ID] {
			continue
		}
		if len(wantedDays) > 0 && !wantedDays[tmpl.DayOfWeek] {
			continue
		}
		date := model.DateForWeekday(weekStart, tmpl.DayOfWeek)
		if closed[model.FormatDate(date)] {
			continue
		}
		selected = append(selected, tmpl)
	}
	return selected
}

// expandTemplate creates a dated shift with empty role slots copied from
// the template's requirements in declaration order.
func expandTemplate(tmpl model.ShiftTemplate, weekStart time.Time) model.ShiftInstance {
	shift := model.ShiftInstance{
		ID:               uuid.New().String(),
		Date:             model.DateForWeekday(weekStart, tmpl.DayOfWeek),
		StartTime:        tmpl.StartTime,
		EndTime:          tmpl.EndTime,
		SourceTemplateID: tmpl.ID,
	}
	for _, req := range tmpl.RoleRequirements {
		shift.RoleSlots = append(shift.RoleSlots, model.RoleSlot{
			Role:          req.Role,
			RequiredCount: req.Count,
		})
	}
	return shift
}

// buildFillOrder produces every open unit position ordered by template
// priority descending, then chronological shift order, then role
// declaration order, then unit index. Must-fill shifts compete for staff
// before lower-priority shifts exhaust the pool.
func buildFillOrder(rota *model.Rota, templatesByID map[string]model.ShiftTemplate) []fillUnit {
	var units []fillUnit
	for shiftIdx, shift := range rota.Shifts {
		priority := defaultFillPriority
		if tmpl, ok := templatesByID[shift.SourceTemplateID]; ok {
			priority = tmpl.Priority
		}
		for slotIdx, slot := range shift.RoleSlots {
			for unit := 0; unit < slot.RequiredCount; unit++ {
				units = append(units, fillUnit{
					shiftIdx: shiftIdx,
					slotIdx:  slotIdx,
					unit:     unit,
					priority: priority,
				})
			}
		}
	}

	// Shift indices are already chronological, so they encode the
	// date/start/template ordering.
	sort.Slice(units, func(i, j int) bool {
		a, b := units[i], units[j]
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		if a.shiftIdx != b.shiftIdx {
			return a.shiftIdx < b.shiftIdx
		}
		if a.slotIdx != b.slotIdx {
			return a.slotIdx < b.slotIdx
		}
		return a.unit < b.unit
	})

	return units
}

const defaultFillPriority = 3

// fillUnits runs the candidate filter, scoring and commit loop for every
// unit position in order, updating the running state as it goes.
func fillUnits(rota *model.Rota, units []fillUnit, templatesByID map[string]model.ShiftTemplate, input GenerationInput, result *GenerationResult) {
	state := NewState(input.Staff)

	// Stable candidate order; the scoring tie-break relies on it
	roster := make([]model.Staff, 0, len(input.Staff))
	for _, st := range input.Staff {
		if st.IsActive {
			roster = append(roster, st)
		}
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].ID < roster[j].ID })

	ruleSet := rules.ForConfig(input.Config)
	categories := scoring.Registry()

	for _, u := range units {
		shift := &rota.Shifts[u.shiftIdx]
		slot := &shift.RoleSlots[u.slotIdx]

		templatePriority := 0
		if tmpl, ok := templatesByID[shift.SourceTemplateID]; ok {
			templatePriority = tmpl.Priority
		}

		var breakdowns []scoring.Breakdown
		for _, staff := range roster {
			if shift.HasStaff(staff.ID) {
				continue
			}
			result.Summary.CandidatesConsidered++

			rctx := rules.Context{
				Staff:   staff,
				Shift:   *shift,
				Slot:    *slot,
				TimeOff: input.TimeOff,
				View:    state,
				Config:  input.Config,
			}
			if rules.Evaluate(rctx, ruleSet) != nil {
				continue
			}

			breakdowns = append(breakdowns, scoring.Score(scoring.Context{
				Staff:            staff,
				Shift:            *shift,
				Slot:             *slot,
				TemplatePriority: templatePriority,
				View:             state,
			}, categories, input.Weights))
		}

		if len(breakdowns) == 0 {
			// Partial fill is allowed; the slot surfaces as understaffed
			continue
		}

		scoring.Rank(breakdowns)
		best := breakdowns[0].StaffID

		slot.AssignedStaffIDs = append(slot.AssignedStaffIDs, best)
		state.Commit(best, *shift)
		result.Summary.SlotsFilled++
	}
}

// understaffedWarnings reports one warning per slot left short of its
// required headcount.
func understaffedWarnings(rota *model.Rota) []Issue {
	var warnings []Issue
	for _, shift := range rota.Shifts {
		for _, slot := range shift.RoleSlots {
			if open := slot.OpenPositions(); open > 0 {
				warnings = append(warnings, Issue{
					RuleID:  WarnUnderstaffed,
					ShiftID: shift.ID,
					Message: fmt.Sprintf("%s slot on %s filled %d of %d", slot.Role, model.FormatDate(shift.Date), len(slot.AssignedStaffIDs), slot.RequiredCount),
					Details: map[string]string{
						"role":     string(slot.Role),
						"required": fmt.Sprintf("%d", slot.RequiredCount),
						"assigned": fmt.Sprintf("%d", len(slot.AssignedStaffIDs)),
					},
				})
			}
		}
	}
	return warnings
}
