package scoring

import "math"

// CategoryPriorityAlignment rewards matching staff seniority to the shift
// template's priority level: must-fill shifts prefer senior staff, low
// priority shifts prefer junior staff. Seniority is derived from role since
// the staff record carries no explicit rank.
const CategoryPriorityAlignment = "priority_alignment"

// Manual shifts have no template priority; treat them as mid-priority
const defaultShiftPriority = 3

type PriorityAlignmentCategory struct{}

func (PriorityAlignmentCategory) Name() string { return CategoryPriorityAlignment }

func (PriorityAlignmentCategory) Max() float64 { return 100 }

func (c PriorityAlignmentCategory) Score(sctx Context) (float64, map[string]float64) {
	priority := sctx.TemplatePriority
	if priority < 1 || priority > 5 {
		priority = defaultShiftPriority
	}

	seniority := sctx.Staff.Role.Seniority()
	distance := math.Abs(float64(seniority - priority))

	// Each rank of mismatch costs a quarter of the maximum
	score := c.Max() - distance*25
	if score < 0 {
		score = 0
	}

	debug := map[string]float64{
		"seniority":      float64(seniority),
		"shift_priority": float64(priority),
	}

	return score, debug
}
