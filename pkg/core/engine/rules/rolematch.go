package rules

import (
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// RoleMismatchRule rejects assignments where the staff member's role does
// not match the slot's role.
type RoleMismatchRule struct{}

func (RoleMismatchRule) ID() model.RuleID {
	return model.RuleRoleMismatch
}

func (RoleMismatchRule) Enabled(cfg Config) bool {
	return cfg.RoleQualificationEnforcement
}

func (r RoleMismatchRule) Check(rctx Context) *Violation {
	if rctx.Staff.Role != rctx.Slot.Role {
		return &Violation{
			RuleID: r.ID(),
			Message: fmt.Sprintf("%s is a %s but the slot requires a %s",
				rctx.Staff.ID, rctx.Staff.Role, rctx.Slot.Role),
		}
	}
	return nil
}
