package rules

import (
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// CheckDuration validates a shift's length against the configured bounds.
// Unlike the per-assignment rules this runs once, when a template or manual
// shift is created, not on every candidate evaluation.
func CheckDuration(start, end model.ClockTime, cfg Config) *Violation {
	span := model.SpanMinutes(start, end)

	if span < cfg.MinShiftMinutes {
		return &Violation{
			RuleID: model.RuleDurationOutOfBounds,
			Message: fmt.Sprintf("shift %s-%s lasts %.1fh, below the %.1fh minimum",
				start, end, float64(span)/60, float64(cfg.MinShiftMinutes)/60),
		}
	}
	if span > cfg.MaxShiftMinutes {
		return &Violation{
			RuleID: model.RuleDurationOutOfBounds,
			Message: fmt.Sprintf("shift %s-%s lasts %.1fh, above the %.1fh maximum",
				start, end, float64(span)/60, float64(cfg.MaxShiftMinutes)/60),
		}
	}
	return nil
}
