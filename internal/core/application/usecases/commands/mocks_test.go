package commands_test

import (
	"context"
	"errors"
	"time"

	"batching/internal/core/application/usecases/commands"
	"batching/internal/core/domain/model/batch"
	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/prebatch"
	"batching/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPreBatchRepository struct{ mock.Mock }

func (m *MockPreBatchRepository) Add(ctx context.Context, p *prebatch.PreBatch) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPreBatchRepository) Update(ctx context.Context, p *prebatch.PreBatch) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPreBatchRepository) Get(ctx context.Context, id kernel.UUID) (*prebatch.PreBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prebatch.PreBatch), args.Error(1)
}
func (m *MockPreBatchRepository) GetAllDraftsOlderThan(ctx context.Context, cutoff time.Time) ([]*prebatch.PreBatch, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*prebatch.PreBatch), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Get(_ context.Context, _ kernel.UUID) (*batch.Batch, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPreBatchUoW struct{ mock.Mock }

func (m *MockPreBatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPreBatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPreBatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPreBatchUoW) PreBatchRepository() ports.PreBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.PreBatchRepository)
}

type MockPreBatchUoWFactory struct{ mock.Mock }

func (m *MockPreBatchUoWFactory) Create() commands.PreBatchUoW {
	args := m.Called()
	return args.Get(0).(commands.PreBatchUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) PreBatchRepository() ports.PreBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.PreBatchRepository)
}
func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRouteOptimizer struct{ mock.Mock }

func (m *MockRouteOptimizer) Optimize(ctx context.Context, request ports.OptimizeRequest) (ports.OptimizeResult, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(ports.OptimizeResult), args.Error(1)
}

type MockLocationDirectory struct{ mock.Mock }

func (m *MockLocationDirectory) FacilityPoints(ctx context.Context, facilityIDs []kernel.UUID) (map[kernel.UUID]kernel.GeoPoint, error) {
	args := m.Called(ctx, facilityIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]kernel.GeoPoint), args.Error(1)
}
func (m *MockLocationDirectory) StartPoint(ctx context.Context, id kernel.UUID, locationType string) (kernel.GeoPoint, error) {
	args := m.Called(ctx, id, locationType)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}
