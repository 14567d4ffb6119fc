package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/engine/rules"
	"github.com/emberandoak/staffrota/pkg/core/engine/scoring"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// engineRuleConfig converts the application config into the rule engine's
// enforcement configuration.
func engineRuleConfig(cfg *config.Config) (rules.Config, error) {
	earliest, err := model.ParseClock(cfg.Under18.EarliestStart)
	if err != nil {
		return rules.Config{}, fmt.Errorf("invalid under18 earliest start: %w", err)
	}
	latest, err := model.ParseClock(cfg.Under18.LatestEnd)
	if err != nil {
		return rules.Config{}, fmt.Errorf("invalid under18 latest end: %w", err)
	}

	return rules.Config{
		TimeOffEnforcement:           cfg.Enforcement.TimeOff,
		RoleQualificationEnforcement: cfg.Enforcement.RoleQualification,
		AvailabilityEnforcement:      cfg.Enforcement.Availability,
		MaxHoursEnforcement:          cfg.Enforcement.MaxHours,
		AgeRestrictionsEnabled:       cfg.Enforcement.AgeRestrictions,
		MinShiftMinutes:              int(cfg.Limits.MinimumShiftDurationHours * 60),
		MaxShiftMinutes:              int(cfg.Limits.MaximumShiftDurationHours * 60),
		LegalMaxWeeklyMinutes:        int(cfg.Limits.LegalMaxWeeklyHours * 60),
		Under18: rules.Under18Limits{
			EarliestStart:   earliest,
			LatestEnd:       latest,
			MaxDailyMinutes: int(cfg.Under18.MaxDailyHours * 60),
		},
	}, nil
}

// scoringWeights converts the configured category weights
func scoringWeights(cfg *config.Config) scoring.Weights {
	return scoring.Weights{
		scoring.CategoryFairness:           cfg.Weights.Fairness,
		scoring.CategoryCost:               cfg.Weights.Cost,
		scoring.CategoryAvailabilityMargin: cfg.Weights.AvailabilityMargin,
		scoring.CategoryPriorityAlignment:  cfg.Weights.PriorityAlignment,
	}
}

// closureDatesForWeek expands the configured closure rrules onto the seven
// days of the target week.
func closureDatesForWeek(cfg *config.Config, weekStart time.Time) ([]time.Time, error) {
	if len(cfg.ClosureRules) == 0 {
		return nil, nil
	}

	from := model.DateOnly(weekStart)
	until := from.AddDate(0, 0, 7).Add(-time.Second)

	var dates []time.Time
	seen := make(map[string]bool)

	for i, rule := range cfg.ClosureRules {
		r, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in closureDates[%d]: %w", i, err)
		}
		// Anchor the rule at the week start so rules without an explicit
		// DTSTART still produce occurrences for any target week.
		r.DTStart(from)
		for _, occurrence := range r.Between(from, until, true) {
			date := model.DateOnly(occurrence)
			key := model.FormatDate(date)
			if !seen[key] {
				seen[key] = true
				dates = append(dates, date)
			}
		}
	}

	return dates, nil
}
