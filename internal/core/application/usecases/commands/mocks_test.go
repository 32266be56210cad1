package commands_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func storedOrder(t *testing.T, id int64, progress order.Progress) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(mustID(t, id), order.Details{
		CustomerName: "Acme K.K.",
		ProjectName:  "Spring catalogue",
	}, progress, fixedNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return o
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLineItemRepository struct{ mock.Mock }

func (m *MockLineItemRepository) Get(
	ctx context.Context,
	orderID kernel.ID,
	kind kernel.ItemKind,
) ([]*lineitem.LineItem, error) {
	args := m.Called(ctx, orderID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*lineitem.LineItem), args.Error(1)
}

func (m *MockLineItemRepository) Upsert(ctx context.Context, item *lineitem.LineItem) (kernel.ID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockLineItemRepository) DeleteWhere(
	ctx context.Context,
	orderID kernel.ID,
	kind kernel.ItemKind,
	keep []kernel.ID,
) (int64, error) {
	args := m.Called(ctx, orderID, kind, keep)
	return args.Get(0).(int64), args.Error(1)
}

type MockChatRecordRepository struct{ mock.Mock }

func (m *MockChatRecordRepository) DeleteByOrder(ctx context.Context, orderID kernel.ID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockEditLockRepository struct{ mock.Mock }

func (m *MockEditLockRepository) TryCreate(ctx context.Context, lock *editlock.Lock) (bool, error) {
	args := m.Called(ctx, lock)
	return args.Bool(0), args.Error(1)
}

func (m *MockEditLockRepository) Get(ctx context.Context, orderID kernel.ID) (*editlock.Lock, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*editlock.Lock), args.Error(1)
}

func (m *MockEditLockRepository) DeleteAcquiredBefore(
	ctx context.Context,
	orderID kernel.ID,
	cutoff time.Time,
) (bool, error) {
	args := m.Called(ctx, orderID, cutoff)
	return args.Bool(0), args.Error(1)
}

func (m *MockEditLockRepository) Delete(ctx context.Context, orderID kernel.ID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockEditLockRepository) DeleteAllAcquiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
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

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LineItemRepository() ports.LineItemRepository {
	args := m.Called()
	return args.Get(0).(ports.LineItemRepository)
}

func (m *MockUoW) ChatRecordRepository() ports.ChatRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.ChatRecordRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockItemsUoWFactory struct{ mock.Mock }

func (m *MockItemsUoWFactory) Create() commands.ItemsUoW {
	args := m.Called()
	return args.Get(0).(commands.ItemsUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
