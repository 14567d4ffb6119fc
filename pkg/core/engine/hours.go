package engine

import (
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// StaffHours is one staff member's weekly rollup
type StaffHours struct {
	Hours float64
	Cost  float64
}

// AggregateHours sums hours and labor cost per staff member across every
// assignment in the rota. Durations come from the same clock arithmetic the
// hour-cap rules use, so generation-time and validation-time totals never
// drift. Staff missing from the roster accrue hours at zero cost.
func AggregateHours(rota *model.Rota, staff []model.Staff) map[string]StaffHours {
	rates := make(map[string]float64, len(staff))
	for _, st := range staff {
		rates[st.ID] = st.HourlyRate
	}

	totals := make(map[string]StaffHours)
	for _, shift := range rota.Shifts {
		hours := float64(shift.DurationMinutes()) / 60
		for _, slot := range shift.RoleSlots {
			for _, staffID := range slot.AssignedStaffIDs {
				agg := totals[staffID]
				agg.Hours += hours
				agg.Cost += hours * rates[staffID]
				totals[staffID] = agg
			}
		}
	}
	return totals
}
