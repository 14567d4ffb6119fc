package rules

import (
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// LegalHoursExceededRule rejects assignments that would push a staff
// member's weekly hours past the legal ceiling, independent of their
// personal cap. Not toggleable.
type LegalHoursExceededRule struct{}

func (LegalHoursExceededRule) ID() model.RuleID {
	return model.RuleLegalHoursExceeded
}

func (LegalHoursExceededRule) Enabled(Config) bool {
	return true
}

func (r LegalHoursExceededRule) Check(rctx Context) *Violation {
	committed := rctx.View.CommittedMinutes(rctx.Staff.ID, rctx.Shift.ID)
	total := committed + rctx.Shift.DurationMinutes()

	if total > rctx.Config.LegalMaxWeeklyMinutes {
		return &Violation{
			RuleID: r.ID(),
			Message: fmt.Sprintf("%s would work %.1fh this week, above the legal %.1fh limit",
				rctx.Staff.ID, float64(total)/60, float64(rctx.Config.LegalMaxWeeklyMinutes)/60),
		}
	}
	return nil
}
