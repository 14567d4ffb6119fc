package rules

import (
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// DoubleBookingRule rejects assignments that overlap another shift the
// staff member already holds on the same date. Overnight shifts are
// normalized by pushing the end time past midnight before comparing
// intervals. Not toggleable.
type DoubleBookingRule struct{}

func (DoubleBookingRule) ID() model.RuleID {
	return model.RuleDoubleBooking
}

func (DoubleBookingRule) Enabled(Config) bool {
	return true
}

func (r DoubleBookingRule) Check(rctx Context) *Violation {
	date := model.FormatDate(rctx.Shift.Date)
	if rctx.View.HasOverlappingAssignment(rctx.Staff.ID, date, rctx.Shift.StartTime, rctx.Shift.EndTime, rctx.Shift.ID) {
		return &Violation{
			RuleID: r.ID(),
			Message: fmt.Sprintf("%s is already booked on %s during %s-%s",
				rctx.Staff.ID, date, rctx.Shift.StartTime, rctx.Shift.EndTime),
		}
	}
	return nil
}
