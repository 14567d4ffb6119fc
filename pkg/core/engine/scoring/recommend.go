package scoring

import (
	"math"
	"sort"
)

// Recommendation tiers by total score
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierAdequate  = "adequate"
	TierPoor      = "poor"
)

const maxRecommendations = 3
const maxTopStrengths = 3

// Tier buckets a total score into a recommendation tier
func Tier(total float64) string {
	switch {
	case total > 200:
		return TierExcellent
	case total > 150:
		return TierGood
	case total > 100:
		return TierAdequate
	default:
		return TierPoor
	}
}

// Recommendation is one ranked candidate for a slot
type Recommendation struct {
	StaffID      string
	TotalScore   float64
	MaxPossible  float64
	Percentage   float64 // TotalScore/MaxPossible*100, one decimal place
	TopStrengths []string
	Tier         string
}

// Recommend ranks the breakdowns and returns at most the top three
// candidates, each annotated with its strongest categories and tier.
func Recommend(breakdowns []Breakdown) []Recommendation {
	ranked := make([]Breakdown, len(breakdowns))
	copy(ranked, breakdowns)
	Rank(ranked)

	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}

	recs := make([]Recommendation, 0, len(ranked))
	for _, b := range ranked {
		percentage := 0.0
		if b.MaxPossible > 0 {
			percentage = math.Round(b.Total/b.MaxPossible*1000) / 10
		}
		recs = append(recs, Recommendation{
			StaffID:      b.StaffID,
			TotalScore:   b.Total,
			MaxPossible:  b.MaxPossible,
			Percentage:   percentage,
			TopStrengths: topStrengths(b.Scores),
			Tier:         Tier(b.Total),
		})
	}

	return recs
}

// topStrengths returns the highest raw sub-score category names, ties
// broken alphabetically for a stable order.
func topStrengths(scores map[string]float64) []string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > maxTopStrengths {
		names = names[:maxTopStrengths]
	}
	return names
}
