package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

const configFileName = "rota_config.yaml"

// EnforcementConfig toggles individual hard-constraint rules. Disabling a
// flag disables only its rule; the rest of the set is unaffected.
type EnforcementConfig struct {
	TimeOff           bool `yaml:"timeOff"`
	RoleQualification bool `yaml:"roleQualification"`
	Availability      bool `yaml:"availability"`
	MaxHours          bool `yaml:"maxHours"`
	AgeRestrictions   bool `yaml:"ageRestrictions"`
}

// LimitsConfig holds the numeric thresholds for rules and warnings
type LimitsConfig struct {
	MinimumShiftDurationHours float64 `yaml:"minimumShiftDurationHours" validate:"gt=0"`
	MaximumShiftDurationHours float64 `yaml:"maximumShiftDurationHours" validate:"gt=0"`
	LegalMaxWeeklyHours       float64 `yaml:"legalMaxWeeklyHours" validate:"gt=0"`

	// SoftWeeklyHoursWarning flags staff above this weekly total during
	// validation. Zero disables.
	SoftWeeklyHoursWarning float64 `yaml:"softWeeklyHoursWarning" validate:"min=0"`

	// ShiftLaborBudget flags shifts whose realized labor cost exceeds it.
	// Zero disables.
	ShiftLaborBudget float64 `yaml:"shiftLaborBudget" validate:"min=0"`
}

// Under18Config bounds the working window for staff flagged under 18
type Under18Config struct {
	EarliestStart string  `yaml:"earliestStart" validate:"required"`
	LatestEnd     string  `yaml:"latestEnd" validate:"required"`
	MaxDailyHours float64 `yaml:"maxDailyHours" validate:"gt=0"`
}

// WeightsConfig sets the soft-constraint category weights
type WeightsConfig struct {
	Fairness           float64 `yaml:"fairness" validate:"min=0"`
	Cost               float64 `yaml:"cost" validate:"min=0"`
	AvailabilityMargin float64 `yaml:"availabilityMargin" validate:"min=0"`
	PriorityAlignment  float64 `yaml:"priorityAlignment" validate:"min=0"`
}

// ClosureRule marks recurring dates the restaurant is closed. The rrule is
// evaluated against each target week during generation and validation.
type ClosureRule struct {
	RRule  string `yaml:"rrule" validate:"required"`
	Reason string `yaml:"reason,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL  string            `yaml:"databaseURL" validate:"required"`
	Enforcement  EnforcementConfig `yaml:"enforcement"`
	Limits       LimitsConfig      `yaml:"limits"`
	Under18      Under18Config     `yaml:"under18"`
	Weights      WeightsConfig     `yaml:"weights"`
	ClosureRules []ClosureRule     `yaml:"closureDates,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the standard configuration: every enforcement flag on
// except age restrictions, 2h/12h shift bounds, 60h legal ceiling, equal
// scoring weights.
func Default() *Config {
	return &Config{
		Enforcement: EnforcementConfig{
			TimeOff:           true,
			RoleQualification: true,
			Availability:      true,
			MaxHours:          true,
			AgeRestrictions:   false,
		},
		Limits: LimitsConfig{
			MinimumShiftDurationHours: 2,
			MaximumShiftDurationHours: 12,
			LegalMaxWeeklyHours:       60,
			SoftWeeklyHoursWarning:    48,
			ShiftLaborBudget:          0,
		},
		Under18: Under18Config{
			EarliestStart: "06:00",
			LatestEnd:     "22:00",
			MaxDailyHours: 8,
		},
		Weights: WeightsConfig{
			Fairness:           1,
			Cost:               1,
			AvailabilityMargin: 1,
			PriorityAlignment:  1,
		},
	}
}

// Load loads and validates the configuration from rota_config.yaml,
// searching the current directory first, then the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Fields absent from the file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct, clock strings and closure
// rrule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Limits.MinimumShiftDurationHours >= cfg.Limits.MaximumShiftDurationHours {
		return fmt.Errorf("minimumShiftDurationHours must be below maximumShiftDurationHours")
	}

	if _, err := model.ParseClock(cfg.Under18.EarliestStart); err != nil {
		return fmt.Errorf("invalid under18.earliestStart: %w", err)
	}
	if _, err := model.ParseClock(cfg.Under18.LatestEnd); err != nil {
		return fmt.Errorf("invalid under18.latestEnd: %w", err)
	}

	for i, rule := range cfg.ClosureRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in closureDates[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in the current directory
// first, then the home directory.
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(home, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
