package db

import (
	"context"

	"github.com/emberandoak/staffrota/pkg/core/model"
)

// StaffStore defines staff roster reads
type StaffStore interface {
	ListStaff(ctx context.Context) ([]model.Staff, error)
}

// TemplateStore defines shift template reads
type TemplateStore interface {
	ListShiftTemplates(ctx context.Context) ([]model.ShiftTemplate, error)
}

// TimeOffStore defines time-off request reads
type TimeOffStore interface {
	ListTimeOffRequests(ctx context.Context) ([]model.TimeOffRequest, error)
}

// RotaStore defines rota persistence. SaveRota enforces optimistic
// concurrency: the write is rejected with model.ErrVersionConflict when the
// stored version no longer matches expectedVersion; on success the rota's
// version is bumped to expectedVersion+1.
type RotaStore interface {
	GetRota(ctx context.Context, rotaID string) (*model.Rota, error)
	ListRotas(ctx context.Context) ([]model.RotaSummary, error)
	CreateRota(ctx context.Context, rota *model.Rota) error
	SaveRota(ctx context.Context, rota *model.Rota, expectedVersion int) error
	DeleteRota(ctx context.Context, rotaID string) error
}

// Store is the full store surface the CLI wires up
type Store interface {
	StaffStore
	TemplateStore
	TimeOffStore
	RotaStore
}
