package rules

import (
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// AvailabilityConflictRule rejects assignments on weekdays the staff member
// has not marked as available.
type AvailabilityConflictRule struct{}

func (AvailabilityConflictRule) ID() model.RuleID {
	return model.RuleAvailabilityConflict
}

func (AvailabilityConflictRule) Enabled(cfg Config) bool {
	return cfg.AvailabilityEnforcement
}

func (r AvailabilityConflictRule) Check(rctx Context) *Violation {
	day := rctx.Shift.Date.Weekday()
	if !rctx.Staff.AvailableOn(day) {
		return &Violation{
			RuleID:  r.ID(),
			Message: fmt.Sprintf("%s is not available on %s", rctx.Staff.ID, day),
		}
	}
	return nil
}
