package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

func TestState_CommittedMinutes(t *testing.T) {
	state := NewState(nil)
	state.Commit("alice", model.ShiftInstance{
		ID:        "sh1",
		Date:      time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		StartTime: model.MustParseClock("09:00"),
		EndTime:   model.MustParseClock("17:00"),
	})
	state.Commit("alice", model.ShiftInstance{
		ID:        "sh2",
		Date:      time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		StartTime: model.MustParseClock("10:00"),
		EndTime:   model.MustParseClock("14:00"),
	})

	assert.Equal(t, 720, state.CommittedMinutes("alice", ""))
	// Excluding a shift drops its claim from the total
	assert.Equal(t, 240, state.CommittedMinutes("alice", "sh1"))
	assert.Equal(t, 0, state.CommittedMinutes("bob", ""))
}

func TestState_DailyMinutes(t *testing.T) {
	state := NewState(nil)
	state.Commit("alice", model.ShiftInstance{
		ID:        "sh1",
		Date:      time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		StartTime: model.MustParseClock("09:00"),
		EndTime:   model.MustParseClock("13:00"),
	})
	state.Commit("alice", model.ShiftInstance{
		ID:        "sh2",
		Date:      time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		StartTime: model.MustParseClock("15:00"),
		EndTime:   model.MustParseClock("19:00"),
	})
	state.Commit("alice", model.ShiftInstance{
		ID:        "sh3",
		Date:      time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		StartTime: model.MustParseClock("09:00"),
		EndTime:   model.MustParseClock("13:00"),
	})

	assert.Equal(t, 480, state.DailyMinutes("alice", "2026-02-09", ""))
	assert.Equal(t, 240, state.DailyMinutes("alice", "2026-02-09", "sh2"))
	assert.Equal(t, 240, state.DailyMinutes("alice", "2026-02-10", ""))
}

func TestState_HasOverlappingAssignment(t *testing.T) {
	state := NewState(nil)
	state.Commit("alice", model.ShiftInstance{
		ID:        "sh1",
		Date:      time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		StartTime: model.MustParseClock("09:00"),
		EndTime:   model.MustParseClock("17:00"),
	})

	overlap := state.HasOverlappingAssignment("alice", "2026-02-09",
		model.MustParseClock("15:00"), model.MustParseClock("23:00"), "")
	assert.True(t, overlap)

	// Same interval on a different date is fine
	overlap = state.HasOverlappingAssignment("alice", "2026-02-10",
		model.MustParseClock("15:00"), model.MustParseClock("23:00"), "")
	assert.False(t, overlap)

	// Back to back shifts do not overlap
	overlap = state.HasOverlappingAssignment("alice", "2026-02-09",
		model.MustParseClock("17:00"), model.MustParseClock("22:00"), "")
	assert.False(t, overlap)

	// Excluding the committed shift suppresses its claim
	overlap = state.HasOverlappingAssignment("alice", "2026-02-09",
		model.MustParseClock("10:00"), model.MustParseClock("12:00"), "sh1")
	assert.False(t, overlap)
}

func TestState_OvernightOverlap(t *testing.T) {
	state := NewState(nil)
	state.Commit("alice", model.ShiftInstance{
		ID:        "late",
		Date:      time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		StartTime: model.MustParseClock("22:00"),
		EndTime:   model.MustParseClock("02:00"),
	})

	// An evening shift on the same date clashes with the overnight claim
	overlap := state.HasOverlappingAssignment("alice", "2026-02-09",
		model.MustParseClock("20:00"), model.MustParseClock("23:00"), "")
	assert.True(t, overlap)

	// A morning shift on the same date does not
	overlap = state.HasOverlappingAssignment("alice", "2026-02-09",
		model.MustParseClock("08:00"), model.MustParseClock("12:00"), "")
	assert.False(t, overlap)
}

func TestState_RateRange(t *testing.T) {
	state := NewState([]model.Staff{
		{ID: "a", HourlyRate: 12, IsActive: true},
		{ID: "b", HourlyRate: 25, IsActive: true},
		{ID: "c", HourlyRate: 9, IsActive: true},
		{ID: "d", HourlyRate: 99, IsActive: false}, // inactive staff excluded
	})

	min, max := state.RateRange()
	assert.Equal(t, 9.0, min)
	assert.Equal(t, 25.0, max)
}

func TestStateFromRota(t *testing.T) {
	rota := &model.Rota{
		Shifts: []model.ShiftInstance{
			{
				ID:        "sh1",
				Date:      time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
				StartTime: model.MustParseClock("09:00"),
				EndTime:   model.MustParseClock("17:00"),
				RoleSlots: []model.RoleSlot{
					{Role: model.RoleServer, RequiredCount: 2, AssignedStaffIDs: []string{"alice", "bob"}},
				},
			},
		},
	}

	state := StateFromRota(rota, nil)
	assert.Equal(t, 480, state.CommittedMinutes("alice", ""))
	assert.Equal(t, 480, state.CommittedMinutes("bob", ""))
}
