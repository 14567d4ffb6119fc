package engine

import (
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// bookedInterval is one committed assignment's time claim
type bookedInterval struct {
	shiftID  string
	date     string
	startMin int
	endMin   int // normalized past 1440 for overnight shifts
	minutes  int
}

// State is the committed-assignment accumulator threaded through a single
// generation or validation pass. It is built fresh per call from immutable
// inputs, never shared between calls, so the engine stays reentrant.
//
// State satisfies both rules.View and scoring.View.
type State struct {
	intervals map[string][]bookedInterval // staffID -> claims this week
	minRate   float64
	maxRate   float64
	hasRates  bool
}

// NewState creates an empty state over the given roster. The roster is only
// used to derive the rate range for cost scoring; active staff only.
func NewState(roster []model.Staff) *State {
	s := &State{intervals: make(map[string][]bookedInterval)}
	for _, st := range roster {
		if !st.IsActive {
			continue
		}
		if !s.hasRates || st.HourlyRate < s.minRate {
			s.minRate = st.HourlyRate
		}
		if !s.hasRates || st.HourlyRate > s.maxRate {
			s.maxRate = st.HourlyRate
		}
		s.hasRates = true
	}
	return s
}

// StateFromRota builds the committed state of an existing rota, for direct
// assignment checks and whole-rota validation.
func StateFromRota(rota *model.Rota, roster []model.Staff) *State {
	s := NewState(roster)
	for _, shift := range rota.Shifts {
		for _, slot := range shift.RoleSlots {
			for _, staffID := range slot.AssignedStaffIDs {
				s.Commit(staffID, shift)
			}
		}
	}
	return s
}

// Commit records a staff member's assignment to a shift
func (s *State) Commit(staffID string, shift model.ShiftInstance) {
	start, end := model.NormalizedInterval(shift.StartTime, shift.EndTime)
	s.intervals[staffID] = append(s.intervals[staffID], bookedInterval{
		shiftID:  shift.ID,
		date:     model.FormatDate(shift.Date),
		startMin: start,
		endMin:   end,
		minutes:  shift.DurationMinutes(),
	})
}

// CommittedMinutes returns the staff member's total committed minutes this
// week, excluding any claims from the named shift.
func (s *State) CommittedMinutes(staffID, excludeShiftID string) int {
	total := 0
	for _, iv := range s.intervals[staffID] {
		if iv.shiftID == excludeShiftID {
			continue
		}
		total += iv.minutes
	}
	return total
}

// DailyMinutes returns the staff member's committed minutes on one date,
// excluding any claims from the named shift.
func (s *State) DailyMinutes(staffID string, date string, excludeShiftID string) int {
	total := 0
	for _, iv := range s.intervals[staffID] {
		if iv.shiftID == excludeShiftID || iv.date != date {
			continue
		}
		total += iv.minutes
	}
	return total
}

// HasOverlappingAssignment reports whether the staff member holds a
// same-date assignment overlapping [start, end), excluding the named shift.
func (s *State) HasOverlappingAssignment(staffID string, date string, start, end model.ClockTime, excludeShiftID string) bool {
	cs, ce := model.NormalizedInterval(start, end)
	for _, iv := range s.intervals[staffID] {
		if iv.shiftID == excludeShiftID || iv.date != date {
			continue
		}
		if cs < iv.endMin && iv.startMin < ce {
			return true
		}
	}
	return false
}

// RateRange returns the lowest and highest hourly rate across the active
// roster the state was built over.
func (s *State) RateRange() (float64, float64) {
	return s.minRate, s.maxRate
}
