package scoring

// CategoryCost rewards lower hourly rates. The sub-score is monotonic
// decreasing in rate, normalized against the roster's rate range.
const CategoryCost = "cost"

type CostCategory struct{}

func (CostCategory) Name() string { return CategoryCost }

func (CostCategory) Max() float64 { return 100 }

func (c CostCategory) Score(sctx Context) (float64, map[string]float64) {
	min, max := sctx.View.RateRange()
	rate := sctx.Staff.HourlyRate

	debug := map[string]float64{
		"hourly_rate":     rate,
		"roster_min_rate": min,
		"roster_max_rate": max,
	}

	// A uniform-rate roster gives no signal to rank on
	if max <= min {
		return c.Max() / 2, debug
	}

	normalized := (max - rate) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return normalized * c.Max(), debug
}
