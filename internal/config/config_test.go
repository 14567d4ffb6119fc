package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Default()
	cfg.DatabaseURL = "postgres://localhost:5432/staffrota"
	return cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	err := Validate(validConfig())
	assert.NoError(t, err)
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	err := Validate(Default())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_MinimumAboveMaximum(t *testing.T) {
	cfg := validConfig()
	cfg.Limits.MinimumShiftDurationHours = 12
	cfg.Limits.MaximumShiftDurationHours = 2

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "minimumShiftDurationHours")
}

func TestValidate_InvalidUnder18Clock(t *testing.T) {
	cfg := validConfig()
	cfg.Under18.EarliestStart = "dawn"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "earliestStart")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.ClosureRules = []ClosureRule{{RRule: "INVALID_RRULE_SYNTAX"}}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_EmptyRRule(t *testing.T) {
	cfg := validConfig()
	cfg.ClosureRules = []ClosureRule{{RRule: "", Reason: "bank holiday"}}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_ComplexValidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.ClosureRules = []ClosureRule{{RRule: "FREQ=MONTHLY;BYDAY=1MO;BYMONTH=1,4,7,10"}}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestDefault_SensibleLimits(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Enforcement.TimeOff)
	assert.True(t, cfg.Enforcement.RoleQualification)
	assert.True(t, cfg.Enforcement.Availability)
	assert.True(t, cfg.Enforcement.MaxHours)
	assert.False(t, cfg.Enforcement.AgeRestrictions)

	assert.Equal(t, 2.0, cfg.Limits.MinimumShiftDurationHours)
	assert.Equal(t, 12.0, cfg.Limits.MaximumShiftDurationHours)
	assert.Equal(t, 60.0, cfg.Limits.LegalMaxWeeklyHours)
	assert.Equal(t, 48.0, cfg.Limits.SoftWeeklyHoursWarning)
	assert.Zero(t, cfg.Limits.ShiftLaborBudget)

	assert.Equal(t, "06:00", cfg.Under18.EarliestStart)
	assert.Equal(t, "22:00", cfg.Under18.LatestEnd)
	assert.Equal(t, 8.0, cfg.Under18.MaxDailyHours)

	assert.Equal(t, 1.0, cfg.Weights.Fairness)
	assert.Equal(t, 1.0, cfg.Weights.Cost)
	assert.Equal(t, 1.0, cfg.Weights.AvailabilityMargin)
	assert.Equal(t, 1.0, cfg.Weights.PriorityAlignment)
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	data := `
databaseURL: "postgres://localhost:5432/staffrota"
enforcement:
  timeOff: true
  roleQualification: true
  availability: false
  maxHours: true
  ageRestrictions: true
limits:
  minimumShiftDurationHours: 3
  maximumShiftDurationHours: 10
  legalMaxWeeklyHours: 48
weights:
  cost: 2
closureDates:
  - rrule: "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"
    reason: "Christmas"
`

	err := os.WriteFile(configPath, []byte(data), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/staffrota", cfg.DatabaseURL)
	assert.False(t, cfg.Enforcement.Availability)
	assert.True(t, cfg.Enforcement.AgeRestrictions)
	assert.Equal(t, 3.0, cfg.Limits.MinimumShiftDurationHours)
	assert.Equal(t, 10.0, cfg.Limits.MaximumShiftDurationHours)
	assert.Equal(t, 48.0, cfg.Limits.LegalMaxWeeklyHours)

	// Fields absent from the file keep their defaults
	assert.Equal(t, 48.0, cfg.Limits.SoftWeeklyHoursWarning)
	assert.Equal(t, "06:00", cfg.Under18.EarliestStart)
	assert.Equal(t, 2.0, cfg.Weights.Cost)
	assert.Equal(t, 1.0, cfg.Weights.Fairness)

	require.Len(t, cfg.ClosureRules, 1)
	assert.Equal(t, "Christmas", cfg.ClosureRules[0].Reason)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "broken.yaml")

	err := os.WriteFile(configPath, []byte("databaseURL: [unclosed"), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/rota_config.yaml")
	assert.Error(t, err)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_rrule.yaml")

	data := `
databaseURL: "postgres://localhost:5432/staffrota"
closureDates:
  - rrule: "INVALID_RRULE_SYNTAX"
`

	err := os.WriteFile(configPath, []byte(data), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}
