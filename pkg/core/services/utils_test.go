package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/engine/scoring"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

func TestEngineRuleConfig_ConvertsHoursToMinutes(t *testing.T) {
	cfg := config.Default()

	ruleCfg, err := engineRuleConfig(cfg)
	require.NoError(t, err)

	assert.True(t, ruleCfg.TimeOffEnforcement)
	assert.False(t, ruleCfg.AgeRestrictionsEnabled)
	assert.Equal(t, 120, ruleCfg.MinShiftMinutes)
	assert.Equal(t, 720, ruleCfg.MaxShiftMinutes)
	assert.Equal(t, 3600, ruleCfg.LegalMaxWeeklyMinutes)
	assert.Equal(t, model.ClockTime{Hour: 6}, ruleCfg.Under18.EarliestStart)
	assert.Equal(t, model.ClockTime{Hour: 22}, ruleCfg.Under18.LatestEnd)
	assert.Equal(t, 480, ruleCfg.Under18.MaxDailyMinutes)
}

func TestEngineRuleConfig_InvalidClock(t *testing.T) {
	cfg := config.Default()
	cfg.Under18.EarliestStart = "early"

	_, err := engineRuleConfig(cfg)
	assert.Error(t, err)
}

func TestScoringWeights_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Weights.Cost = 2.5

	weights := scoringWeights(cfg)
	assert.Equal(t, 2.5, weights.For(scoring.CategoryCost))
	assert.Equal(t, 1.0, weights.For(scoring.CategoryFairness))
}

func TestClosureDatesForWeek_WeeklyRule(t *testing.T) {
	cfg := config.Default()
	cfg.ClosureRules = []config.ClosureRule{{RRule: "FREQ=WEEKLY;BYDAY=MO", Reason: "deep clean"}}

	dates, err := closureDatesForWeek(cfg, weekStart)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, "2026-02-09", model.FormatDate(dates[0]))
}

func TestClosureDatesForWeek_Dedupes(t *testing.T) {
	cfg := config.Default()
	cfg.ClosureRules = []config.ClosureRule{
		{RRule: "FREQ=WEEKLY;BYDAY=MO"},
		{RRule: "FREQ=DAILY;COUNT=1"}, // also lands on the week start
	}

	dates, err := closureDatesForWeek(cfg, weekStart)
	require.NoError(t, err)
	assert.Len(t, dates, 1)
}

func TestClosureDatesForWeek_NoRules(t *testing.T) {
	dates, err := closureDatesForWeek(config.Default(), weekStart)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestClosureDatesForWeek_InvalidRule(t *testing.T) {
	cfg := config.Default()
	cfg.ClosureRules = []config.ClosureRule{{RRule: "garbage"}}

	_, err := closureDatesForWeek(cfg, weekStart)
	assert.Error(t, err)
}

func TestClosureDatesForWeek_AnchorsAtTargetWeek(t *testing.T) {
	cfg := config.Default()
	cfg.ClosureRules = []config.ClosureRule{{RRule: "FREQ=WEEKLY;BYDAY=SU"}}

	// A week far in the past still yields its Sunday
	past := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC) // Monday
	dates, err := closureDatesForWeek(cfg, past)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, "2020-01-12", model.FormatDate(dates[0]))
}
