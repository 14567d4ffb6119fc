package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// ListShiftTemplates retrieves all shift templates with their role
// requirements in declaration order.
func (d *DB) ListShiftTemplates(ctx context.Context) ([]model.ShiftTemplate, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, day_of_week, start_time, end_time, priority, is_active
		FROM shift_template
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift templates: %w", err)
	}
	defer rows.Close()

	var templates []model.ShiftTemplate
	index := make(map[string]int)
	for rows.Next() {
		var t model.ShiftTemplate
		var day int
		var start, end string
		if err := rows.Scan(&t.ID, &day, &start, &end, &t.Priority, &t.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan shift template: %w", err)
		}
		t.DayOfWeek = time.Weekday(day)
		if t.StartTime, err = model.ParseClock(start); err != nil {
			return nil, fmt.Errorf("template %s: %w", t.ID, err)
		}
		if t.EndTime, err = model.ParseClock(end); err != nil {
			return nil, fmt.Errorf("template %s: %w", t.ID, err)
		}
		index[t.ID] = len(templates)
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift templates: %w", err)
	}

	reqRows, err := d.pool.Query(ctx, `
		SELECT template_id, role, required_count
		FROM template_role_requirement
		ORDER BY template_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query role requirements: %w", err)
	}
	defer reqRows.Close()

	for reqRows.Next() {
		var templateID string
		var req model.RoleRequirement
		if err := reqRows.Scan(&templateID, &req.Role, &req.Count); err != nil {
			return nil, fmt.Errorf("failed to scan role requirement: %w", err)
		}
		if i, ok := index[templateID]; ok {
			templates[i].RoleRequirements = append(templates[i].RoleRequirements, req)
		}
	}
	if err := reqRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role requirements: %w", err)
	}

	return templates, nil
}
