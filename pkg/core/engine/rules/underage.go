package rules

import (
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// UnderageHoursRule bounds shifts for staff flagged under 18: the shift
// must start no earlier than the configured earliest start, end no later
// than the configured latest end, and daily hours must stay within the
// daily cap. Feature-flagged and off by default.
type UnderageHoursRule struct{}

func (UnderageHoursRule) ID() model.RuleID {
	return model.RuleUnderageHoursExceeded
}

func (UnderageHoursRule) Enabled(cfg Config) bool {
	return cfg.AgeRestrictionsEnabled
}

func (r UnderageHoursRule) Check(rctx Context) *Violation {
	if !rctx.Staff.IsUnder18 {
		return nil
	}

	limits := rctx.Config.Under18

	if rctx.Shift.StartTime.Before(limits.EarliestStart) {
		return &Violation{
			RuleID: r.ID(),
			Message: fmt.Sprintf("%s is under 18 and cannot start before %s",
				rctx.Staff.ID, limits.EarliestStart),
		}
	}

	// An overnight shift necessarily runs past the latest permitted end.
	_, end := model.NormalizedInterval(rctx.Shift.StartTime, rctx.Shift.EndTime)
	if end > limits.LatestEnd.Minutes() {
		return &Violation{
			RuleID: r.ID(),
			Message: fmt.Sprintf("%s is under 18 and cannot work past %s",
				rctx.Staff.ID, limits.LatestEnd),
		}
	}

	date := model.FormatDate(rctx.Shift.Date)
	daily := rctx.View.DailyMinutes(rctx.Staff.ID, date, rctx.Shift.ID) + rctx.Shift.DurationMinutes()
	if daily > limits.MaxDailyMinutes {
		return &Violation{
			RuleID: r.ID(),
			Message: fmt.Sprintf("%s is under 18 and would work %.1fh on %s, above the %.1fh daily limit",
				rctx.Staff.ID, float64(daily)/60, date, float64(limits.MaxDailyMinutes)/60),
		}
	}

	return nil
}
