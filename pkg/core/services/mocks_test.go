package services

import (
	"context"
	"fmt"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// mockStore is an in-memory store satisfying every service store interface.
// SaveRota applies the same optimistic version check the real store does.
type mockStore struct {
	staff     []model.Staff
	templates []model.ShiftTemplate
	timeOff   []model.TimeOffRequest
	rotas     map[string]*model.Rota

	saveCalls   int
	createCalls int
	deleteCalls int

	// forceSaveErr overrides SaveRota's outcome when set
	forceSaveErr error
}

func newMockStore() *mockStore {
	return &mockStore{rotas: make(map[string]*model.Rota)}
}

func (m *mockStore) ListStaff(ctx context.Context) ([]model.Staff, error) {
	return m.staff, nil
}

func (m *mockStore) ListShiftTemplates(ctx context.Context) ([]model.ShiftTemplate, error) {
	return m.templates, nil
}

func (m *mockStore) ListTimeOffRequests(ctx context.Context) ([]model.TimeOffRequest, error) {
	return m.timeOff, nil
}

func (m *mockStore) GetRota(ctx context.Context, rotaID string) (*model.Rota, error) {
	rota, ok := m.rotas[rotaID]
	if !ok {
		return nil, fmt.Errorf("rota %s: %w", rotaID, model.ErrNotFound)
	}
	copied := *rota
	copied.Shifts = make([]model.ShiftInstance, len(rota.Shifts))
	for i, shift := range rota.Shifts {
		copied.Shifts[i] = shift
		copied.Shifts[i].RoleSlots = make([]model.RoleSlot, len(shift.RoleSlots))
		for j, slot := range shift.RoleSlots {
			copied.Shifts[i].RoleSlots[j] = slot
			copied.Shifts[i].RoleSlots[j].AssignedStaffIDs = append([]string(nil), slot.AssignedStaffIDs...)
		}
	}
	return &copied, nil
}

func (m *mockStore) ListRotas(ctx context.Context) ([]model.RotaSummary, error) {
	var summaries []model.RotaSummary
	for _, rota := range m.rotas {
		summaries = append(summaries, model.RotaSummary{
			ID:            rota.ID,
			WeekStartDate: rota.WeekStartDate,
			Status:        rota.Status,
			Version:       rota.Version,
		})
	}
	return summaries, nil
}

func (m *mockStore) CreateRota(ctx context.Context, rota *model.Rota) error {
	m.createCalls++
	stored := *rota
	m.rotas[rota.ID] = &stored
	return nil
}

func (m *mockStore) SaveRota(ctx context.Context, rota *model.Rota, expectedVersion int) error {
	m.saveCalls++
	if m.forceSaveErr != nil {
		return m.forceSaveErr
	}

	stored, ok := m.rotas[rota.ID]
	if !ok {
		return fmt.Errorf("rota %s: %w", rota.ID, model.ErrNotFound)
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("rota %s expected version %d: %w", rota.ID, expectedVersion, model.ErrVersionConflict)
	}

	rota.Version = expectedVersion + 1
	updated := *rota
	m.rotas[rota.ID] = &updated
	return nil
}

func (m *mockStore) DeleteRota(ctx context.Context, rotaID string) error {
	m.deleteCalls++
	if _, ok := m.rotas[rotaID]; !ok {
		return fmt.Errorf("rota %s: %w", rotaID, model.ErrNotFound)
	}
	delete(m.rotas, rotaID)
	return nil
}
