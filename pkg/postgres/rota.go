package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// GetRota retrieves a rota with its shifts, slots and assignments
func (d *DB) GetRota(ctx context.Context, rotaID string) (*model.Rota, error) {
	var rota model.Rota
	err := d.pool.QueryRow(ctx, `
		SELECT id, week_start_date, status, version
		FROM rota
		WHERE id = $1
	`, rotaID).Scan(&rota.ID, &rota.WeekStartDate, &rota.Status, &rota.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("rota %s: %w", rotaID, model.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query rota: %w", err)
	}
	rota.WeekStartDate = model.DateOnly(rota.WeekStartDate)

	shifts, err := d.loadShifts(ctx, rotaID)
	if err != nil {
		return nil, err
	}
	rota.Shifts = shifts

	return &rota, nil
}

// ListRotas retrieves summaries of all stored rotas
func (d *DB) ListRotas(ctx context.Context) ([]model.RotaSummary, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, week_start_date, status, version
		FROM rota
		ORDER BY week_start_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rotas: %w", err)
	}
	defer rows.Close()

	var summaries []model.RotaSummary
	for rows.Next() {
		var s model.RotaSummary
		if err := rows.Scan(&s.ID, &s.WeekStartDate, &s.Status, &s.Version); err != nil {
			return nil, fmt.Errorf("failed to scan rota: %w", err)
		}
		s.WeekStartDate = model.DateOnly(s.WeekStartDate)
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rotas: %w", err)
	}

	return summaries, nil
}

// CreateRota inserts a new rota with its shift tree
func (d *DB) CreateRota(ctx context.Context, rota *model.Rota) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO rota (id, week_start_date, status, version)
		VALUES ($1, $2, $3, $4)
	`, rota.ID, rota.WeekStartDate, rota.Status, rota.Version)
	if err != nil {
		return fmt.Errorf("failed to insert rota: %w", err)
	}

	if err := insertShifts(ctx, tx, rota); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rota: %w", err)
	}
	return nil
}

// SaveRota replaces the rota's shift tree and status under an optimistic
// concurrency check. The write is rejected with model.ErrVersionConflict
// when the stored version no longer matches expectedVersion; on success the
// rota's version becomes expectedVersion+1.
func (d *DB) SaveRota(ctx context.Context, rota *model.Rota, expectedVersion int) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE rota
		SET status = $3, version = $2 + 1
		WHERE id = $1 AND version = $2
	`, rota.ID, expectedVersion, rota.Status)
	if err != nil {
		return fmt.Errorf("failed to update rota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM rota WHERE id = $1)`, rota.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check rota existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("rota %s: %w", rota.ID, model.ErrNotFound)
		}
		return fmt.Errorf("rota %s expected version %d: %w", rota.ID, expectedVersion, model.ErrVersionConflict)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM shift_instance WHERE rota_id = $1`, rota.ID); err != nil {
		return fmt.Errorf("failed to clear shifts: %w", err)
	}

	if err := insertShifts(ctx, tx, rota); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rota: %w", err)
	}

	rota.Version = expectedVersion + 1
	return nil
}

// DeleteRota removes a rota and, via cascade, its shift tree
func (d *DB) DeleteRota(ctx context.Context, rotaID string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM rota WHERE id = $1`, rotaID)
	if err != nil {
		return fmt.Errorf("failed to delete rota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("rota %s: %w", rotaID, model.ErrNotFound)
	}
	return nil
}

// insertShifts writes the rota's shifts, slots and assignments
func insertShifts(ctx context.Context, tx pgx.Tx, rota *model.Rota) error {
	for pos, shift := range rota.Shifts {
		var sourceTemplateID *string
		if shift.SourceTemplateID != "" {
			sourceTemplateID = &shift.SourceTemplateID
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO shift_instance (id, rota_id, position, shift_date, start_time, end_time, source_template_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, shift.ID, rota.ID, pos, shift.Date, shift.StartTime.String(), shift.EndTime.String(), sourceTemplateID)
		if err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}

		for slotPos, slot := range shift.RoleSlots {
			_, err := tx.Exec(ctx, `
				INSERT INTO role_slot (shift_id, position, role, required_count)
				VALUES ($1, $2, $3, $4)
			`, shift.ID, slotPos, slot.Role, slot.RequiredCount)
			if err != nil {
				return fmt.Errorf("failed to insert role slot: %w", err)
			}

			for _, staffID := range slot.AssignedStaffIDs {
				_, err := tx.Exec(ctx, `
					INSERT INTO slot_assignment (shift_id, slot_position, staff_id)
					VALUES ($1, $2, $3)
				`, shift.ID, slotPos, staffID)
				if err != nil {
					return fmt.Errorf("failed to insert assignment: %w", err)
				}
			}
		}
	}
	return nil
}

// loadShifts reads the shift tree for a rota in stored order
func (d *DB) loadShifts(ctx context.Context, rotaID string) ([]model.ShiftInstance, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, shift_date, start_time, end_time, source_template_id
		FROM shift_instance
		WHERE rota_id = $1
		ORDER BY position
	`, rotaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []model.ShiftInstance
	index := make(map[string]int)
	for rows.Next() {
		var s model.ShiftInstance
		var start, end string
		var sourceTemplateID *string
		if err := rows.Scan(&s.ID, &s.Date, &start, &end, &sourceTemplateID); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		s.Date = model.DateOnly(s.Date)
		if s.StartTime, err = model.ParseClock(start); err != nil {
			return nil, fmt.Errorf("shift %s: %w", s.ID, err)
		}
		if s.EndTime, err = model.ParseClock(end); err != nil {
			return nil, fmt.Errorf("shift %s: %w", s.ID, err)
		}
		if sourceTemplateID != nil {
			s.SourceTemplateID = *sourceTemplateID
		}
		index[s.ID] = len(shifts)
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	slotRows, err := d.pool.Query(ctx, `
		SELECT rs.shift_id, rs.role, rs.required_count
		FROM role_slot rs
		JOIN shift_instance si ON si.id = rs.shift_id
		WHERE si.rota_id = $1
		ORDER BY rs.shift_id, rs.position
	`, rotaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query role slots: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var shiftID string
		var slot model.RoleSlot
		if err := slotRows.Scan(&shiftID, &slot.Role, &slot.RequiredCount); err != nil {
			return nil, fmt.Errorf("failed to scan role slot: %w", err)
		}
		if i, ok := index[shiftID]; ok {
			shifts[i].RoleSlots = append(shifts[i].RoleSlots, slot)
		}
	}
	if err := slotRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role slots: %w", err)
	}

	assignRows, err := d.pool.Query(ctx, `
		SELECT sa.shift_id, sa.slot_position, sa.staff_id
		FROM slot_assignment sa
		JOIN shift_instance si ON si.id = sa.shift_id
		WHERE si.rota_id = $1
		ORDER BY sa.shift_id, sa.slot_position, sa.staff_id
	`, rotaID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer assignRows.Close()

	for assignRows.Next() {
		var shiftID string
		var slotPos int
		var staffID string
		if err := assignRows.Scan(&shiftID, &slotPos, &staffID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		i, ok := index[shiftID]
		if !ok || slotPos >= len(shifts[i].RoleSlots) {
			continue
		}
		slot := &shifts[i].RoleSlots[slotPos]
		slot.AssignedStaffIDs = append(slot.AssignedStaffIDs, staffID)
	}
	if err := assignRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return shifts, nil
}
