package scoring

import (
	"sort"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// Weights maps category names to their multipliers in the total score.
// Missing categories default to 1.
type Weights map[string]float64

// DefaultWeights gives every registered category equal weight
func DefaultWeights() Weights {
	return Weights{
		CategoryFairness:           1,
		CategoryCost:               1,
		CategoryAvailabilityMargin: 1,
		CategoryPriorityAlignment:  1,
	}
}

func (w Weights) For(category string) float64 {
	if w == nil {
		return 1
	}
	if v, ok := w[category]; ok {
		return v
	}
	return 1
}

// View exposes the committed-state queries scoring needs
type View interface {
	// CommittedMinutes returns the staff member's assigned minutes this
	// week, excluding the named shift.
	CommittedMinutes(staffID, excludeShiftID string) int

	// RateRange returns the lowest and highest hourly rate across the
	// active roster, used to normalize the cost sub-score.
	RateRange() (min, max float64)
}

// Context carries the inputs for scoring one candidate against one slot
type Context struct {
	Staff model.Staff
	Shift model.ShiftInstance
	Slot  model.RoleSlot

	// TemplatePriority is the source template's 1-5 priority, or 0 for
	// manually added shifts.
	TemplatePriority int

	View View
}

// Category is a named soft-constraint scoring signal. Score returns a value
// in [0, Max] plus named debug signals explaining how it was derived.
type Category interface {
	Name() string
	Max() float64
	Score(sctx Context) (float64, map[string]float64)
}

// Registry returns all scoring categories in a fixed order. New categories
// are added here; ranking and recommendation logic sums them generically.
func Registry() []Category {
	return []Category{
		FairnessCategory{},
		CostCategory{},
		AvailabilityMarginCategory{},
		PriorityAlignmentCategory{},
	}
}

// Breakdown is the explainable score for one candidate
type Breakdown struct {
	StaffID string

	// Total is the weighted sum of category sub-scores
	Total float64

	// MaxPossible is the weighted sum of category maximums
	MaxPossible float64

	// Scores holds the raw (unweighted) sub-score per category
	Scores map[string]float64

	// Debug holds per-category diagnostic signals, keyed "category.signal"
	Debug map[string]float64
}

// Score runs every category for the candidate and assembles the breakdown
func Score(sctx Context, categories []Category, weights Weights) Breakdown {
	b := Breakdown{
		StaffID: sctx.Staff.ID,
		Scores:  make(map[string]float64, len(categories)),
		Debug:   make(map[string]float64),
	}

	for _, cat := range categories {
		raw, debug := cat.Score(sctx)
		w := weights.For(cat.Name())

		b.Scores[cat.Name()] = raw
		b.Total += raw * w
		b.MaxPossible += cat.Max() * w

		for signal, value := range debug {
			b.Debug[cat.Name()+"."+signal] = value
		}
	}

	return b
}

// Rank sorts breakdowns by total score descending, breaking ties by lowest
// staff id so equal candidates always order the same way.
func Rank(breakdowns []Breakdown) {
	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].Total != breakdowns[j].Total {
			return breakdowns[i].Total > breakdowns[j].Total
		}
		return breakdowns[i].StaffID < breakdowns[j].StaffID
	})
}
