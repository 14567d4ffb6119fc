package postgres

import (
	"context"
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// ListTimeOffRequests retrieves all time-off requests
func (d *DB) ListTimeOffRequests(ctx context.Context) ([]model.TimeOffRequest, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, staff_id, start_date, end_date, status
		FROM time_off_request
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query time-off requests: %w", err)
	}
	defer rows.Close()

	var requests []model.TimeOffRequest
	for rows.Next() {
		var r model.TimeOffRequest
		if err := rows.Scan(&r.ID, &r.StaffID, &r.StartDate, &r.EndDate, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan time-off request: %w", err)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time-off requests: %w", err)
	}

	return requests, nil
}
