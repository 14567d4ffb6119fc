package scoring

// CategoryFairness rewards staff with fewer committed hours so far this
// week relative to their personal cap, spreading load across the roster.
const CategoryFairness = "fairness"

type FairnessCategory struct{}

func (FairnessCategory) Name() string { return CategoryFairness }

func (FairnessCategory) Max() float64 { return 100 }

func (c FairnessCategory) Score(sctx Context) (float64, map[string]float64) {
	capMinutes := sctx.Staff.MaxHoursPerWeek * 60
	committed := float64(sctx.View.CommittedMinutes(sctx.Staff.ID, sctx.Shift.ID))

	debug := map[string]float64{
		"committed_minutes": committed,
		"cap_minutes":       capMinutes,
	}

	if capMinutes <= 0 {
		return 0, debug
	}

	headroom := 1 - committed/capMinutes
	if headroom < 0 {
		headroom = 0
	}
	if headroom > 1 {
		headroom = 1
	}

	return headroom * c.Max(), debug
}
