package rules

import (
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// Config holds the enforcement toggles and numeric thresholds governing the
// hard-constraint rule set. Durations are minutes to match clock arithmetic.
type Config struct {
	TimeOffEnforcement           bool
	RoleQualificationEnforcement bool
	AvailabilityEnforcement      bool
	MaxHoursEnforcement          bool
	AgeRestrictionsEnabled       bool

	MinShiftMinutes      int
	MaxShiftMinutes      int
	LegalMaxWeeklyMinutes int

	Under18 Under18Limits
}

// Under18Limits bounds the working window for staff flagged under 18
type Under18Limits struct {
	EarliestStart   model.ClockTime
	LatestEnd       model.ClockTime
	MaxDailyMinutes int
}

// DefaultConfig returns the standard enforcement configuration: every rule
// on except age restrictions, 2h/12h shift bounds, 60h legal weekly ceiling
// and a 06:00-22:00, 8h/day under-18 window.
func DefaultConfig() Config {
	return Config{
		TimeOffEnforcement:           true,
		RoleQualificationEnforcement: true,
		AvailabilityEnforcement:      true,
		MaxHoursEnforcement:          true,
		AgeRestrictionsEnabled:       false,
		MinShiftMinutes:              2 * 60,
		MaxShiftMinutes:              12 * 60,
		LegalMaxWeeklyMinutes:        60 * 60,
		Under18: Under18Limits{
			EarliestStart:   model.ClockTime{Hour: 6},
			LatestEnd:       model.ClockTime{Hour: 22},
			MaxDailyMinutes: 8 * 60,
		},
	}
}

// View exposes the committed-assignment state a rule needs to evaluate hour
// totals and booking overlaps. During generation this is the partially built
// rota; during direct assignment and validation it is the stored rota.
//
// All hour queries take an excludeShiftID so validation can re-check an
// assignment without double counting the shift it already sits in.
type View interface {
	// CommittedMinutes returns the staff member's total assigned minutes
	// this week, excluding the named shift.
	CommittedMinutes(staffID, excludeShiftID string) int

	// DailyMinutes returns the staff member's assigned minutes on the given
	// date, excluding the named shift.
	DailyMinutes(staffID string, date string, excludeShiftID string) int

	// HasOverlappingAssignment reports whether the staff member holds an
	// assignment on the given date whose interval overlaps [start, end),
	// excluding the named shift.
	HasOverlappingAssignment(staffID string, date string, start, end model.ClockTime, excludeShiftID string) bool
}

// Context carries everything a rule needs to judge a single candidate
// assignment. Rules are pure functions of this context.
type Context struct {
	Staff   model.Staff
	Shift   model.ShiftInstance
	Slot    model.RoleSlot
	TimeOff []model.TimeOffRequest
	View    View
	Config  Config
}

// Violation reports a failed rule check
type Violation struct {
	RuleID  model.RuleID
	Message string
}

// Rule is a single hard constraint. Check returns nil when the candidate
// assignment passes.
type Rule interface {
	ID() model.RuleID
	Enabled(cfg Config) bool
	Check(rctx Context) *Violation
}

// All returns the full rule set in evaluation order. The order decides
// which violation is reported when several rules would fail.
func All() []Rule {
	return []Rule{
		TimeOffConflictRule{},
		RoleMismatchRule{},
		AvailabilityConflictRule{},
		MaxHoursExceededRule{},
		LegalHoursExceededRule{},
		DoubleBookingRule{},
		UnderageHoursRule{},
	}
}

// ForConfig returns the rules enabled under the given configuration,
// preserving evaluation order.
func ForConfig(cfg Config) []Rule {
	var active []Rule
	for _, r := range All() {
		if r.Enabled(cfg) {
			active = append(active, r)
		}
	}
	return active
}

// Evaluate runs the rules in order and returns the first violation, or nil
// when the candidate assignment passes every enabled rule.
func Evaluate(rctx Context, ruleSet []Rule) *Violation {
	for _, r := range ruleSet {
		if v := r.Check(rctx); v != nil {
			return v
		}
	}
	return nil
}
