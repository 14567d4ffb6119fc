package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// ListStaff retrieves the full staff roster
func (d *DB) ListStaff(ctx context.Context) ([]model.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, role, hourly_rate, max_hours_per_week,
		       available_days, is_under_18, is_active
		FROM staff
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []model.Staff
	for rows.Next() {
		var s model.Staff
		var days []int32
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Role, &s.HourlyRate,
			&s.MaxHoursPerWeek, &days, &s.IsUnder18, &s.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		for _, day := range days {
			s.AvailableDays = append(s.AvailableDays, time.Weekday(day))
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}
