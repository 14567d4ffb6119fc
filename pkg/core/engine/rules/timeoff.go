package rules

import (
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// TimeOffConflictRule rejects assignments on dates covered by an approved
// time-off request. Pending and denied requests never constrain.
type TimeOffConflictRule struct{}

func (TimeOffConflictRule) ID() model.RuleID {
	return model.RuleTimeOffConflict
}

func (TimeOffConflictRule) Enabled(cfg Config) bool {
	return cfg.TimeOffEnforcement
}

func (r TimeOffConflictRule) Check(rctx Context) *Violation {
	for _, req := range rctx.TimeOff {
		if req.StaffID != rctx.Staff.ID || req.Status != model.TimeOffApproved {
			continue
		}
		if req.Covers(rctx.Shift.Date) {
			return &Violation{
				RuleID: r.ID(),
				Message: fmt.Sprintf("%s has approved time off from %s to %s",
					rctx.Staff.ID, model.FormatDate(req.StartDate), model.FormatDate(req.EndDate)),
			}
		}
	}
	return nil
}
