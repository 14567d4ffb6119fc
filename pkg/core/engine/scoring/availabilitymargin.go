package scoring

// CategoryAvailabilityMargin rewards staff whose available-day set is small:
// scarce staff get placed before flexible staff exhaust the slots they could
// have covered. The inverse signal (slack, favouring flexible staff when
// fairness is the priority) is exposed alongside it in the debug output.
const CategoryAvailabilityMargin = "availability_margin"

type AvailabilityMarginCategory struct{}

func (AvailabilityMarginCategory) Name() string { return CategoryAvailabilityMargin }

func (AvailabilityMarginCategory) Max() float64 { return 100 }

func (c AvailabilityMarginCategory) Score(sctx Context) (float64, map[string]float64) {
	days := float64(len(sctx.Staff.AvailableDays))
	if days > 7 {
		days = 7
	}

	scarcity := (1 - days/7) * c.Max()
	slack := (days / 7) * c.Max()

	debug := map[string]float64{
		"available_days": days,
		"scarcity":       scarcity,
		"slack":          slack,
	}

	return scarcity, debug
}
