package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/emberandoak/staffrota/internal/config"
	"github.com/emberandoak/staffrota/pkg/core/engine"
	"github.com/emberandoak/staffrota/pkg/core/engine/rules"
	"github.com/emberandoak/staffrota/pkg/core/engine/scoring"
	"github.com/emberandoak/staffrota/pkg/core/model"
)

// RecommendStore defines the database operations needed for recommendations
type RecommendStore interface {
	GetRota(ctx context.Context, rotaID string) (*model.Rota, error)
	ListStaff(ctx context.Context) ([]model.Staff, error)
	ListShiftTemplates(ctx context.Context) ([]model.ShiftTemplate, error)
	ListTimeOffRequests(ctx context.Context) ([]model.TimeOffRequest, error)
}

// GetStaffRecommendations ranks eligible staff for the given role slot and
// returns at most the top three candidates with their score breakdown
// tiers. Staff failing any hard constraint never appear.
func GetStaffRecommendations(
	ctx context.Context,
	store RecommendStore,
	cfg *config.Config,
	logger *zap.Logger,
	rotaID, shiftID string,
	role model.Role,
) ([]scoring.Recommendation, error) {
	logger.Debug("Building staff recommendations",
		zap.String("rota_id", rotaID),
		zap.String("shift_id", shiftID),
		zap.String("role", string(role)))

	rota, err := store.GetRota(ctx, rotaID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rota: %w", err)
	}

	shift := rota.FindShift(shiftID)
	if shift == nil {
		return nil, fmt.Errorf("shift %s: %w", shiftID, model.ErrNotFound)
	}

	var slot *model.RoleSlot
	for i := range shift.RoleSlots {
		if shift.RoleSlots[i].Role == role {
			slot = &shift.RoleSlots[i]
			break
		}
	}
	if slot == nil {
		return nil, fmt.Errorf("shift %s has no %s slot: %w", shiftID, role, model.ErrNotFound)
	}

	roster, err := store.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	timeOff, err := store.ListTimeOffRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time-off requests: %w", err)
	}

	templatePriority := 0
	if shift.SourceTemplateID != "" {
		templates, err := store.ListShiftTemplates(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch shift templates: %w", err)
		}
		for _, tmpl := range templates {
			if tmpl.ID == shift.SourceTemplateID {
				templatePriority = tmpl.Priority
				break
			}
		}
	}

	ruleCfg, err := engineRuleConfig(cfg)
	if err != nil {
		return nil, err
	}

	state := engine.StateFromRota(rota, roster)
	ruleSet := rules.ForConfig(ruleCfg)
	categories := scoring.Registry()
	weights := scoringWeights(cfg)

	candidates := make([]model.Staff, 0, len(roster))
	for _, st := range roster {
		if st.IsActive {
			candidates = append(candidates, st)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	var breakdowns []scoring.Breakdown
	for _, staff := range candidates {
		if shift.HasStaff(staff.ID) {
			continue
		}
		rctx := rules.Context{
			Staff:   staff,
			Shift:   *shift,
			Slot:    *slot,
			TimeOff: timeOff,
			View:    state,
			Config:  ruleCfg,
		}
		if rules.Evaluate(rctx, ruleSet) != nil {
			continue
		}
		breakdowns = append(breakdowns, scoring.Score(scoring.Context{
			Staff:            staff,
			Shift:            *shift,
			Slot:             *slot,
			TemplatePriority: templatePriority,
			View:             state,
		}, categories, weights))
	}

	recs := scoring.Recommend(breakdowns)

	logger.Debug("Recommendations built",
		zap.String("shift_id", shiftID),
		zap.Int("eligible", len(breakdowns)),
		zap.Int("returned", len(recs)))

	return recs, nil
}
