package rules

import (
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// MaxHoursExceededRule rejects assignments that would push a staff member's
// weekly hours past their personal cap. Hours already committed in the same
// generation or validation pass count toward the total.
type MaxHoursExceededRule struct{}

func (MaxHoursExceededRule) ID() model.RuleID {
	return model.RuleMaxHoursExceeded
}

func (MaxHoursExceededRule) Enabled(cfg Config) bool {
	return cfg.MaxHoursEnforcement
}

func (r MaxHoursExceededRule) Check(rctx Context) *Violation {
	committed := rctx.View.CommittedMinutes(rctx.Staff.ID, rctx.Shift.ID)
	total := committed + rctx.Shift.DurationMinutes()
	capMinutes := int(rctx.Staff.MaxHoursPerWeek * 60)

	if total > capMinutes {
		return &Violation{
			RuleID: r.ID(),
			Message: fmt.Sprintf("%s would work %.1fh this week, above their %.1fh cap",
				rctx.Staff.ID, float64(total)/60, rctx.Staff.MaxHoursPerWeek),
		}
	}
	return nil
}
