package editlock_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	memlock "orderdesk/internal/adapters/out/memory/editlock"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.EditLockRepository = (*memlock.Store)(nil)

var start = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func orderID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func newLock(t *testing.T, order int64, holder string, at time.Time) *editlock.Lock {
	t.Helper()
	lock, err := editlock.NewLock(orderID(t, order), holder, at)
	require.NoError(t, err)
	return lock
}

func TestStore_TryCreate(t *testing.T) {
	store := memlock.NewStore()

	created, err := store.TryCreate(t.Context(), newLock(t, 1, "alice", start))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.TryCreate(t.Context(), newLock(t, 1, "bob", start))
	require.NoError(t, err)
	assert.False(t, created)

	created, err = store.TryCreate(t.Context(), newLock(t, 2, "bob", start))
	require.NoError(t, err)
	assert.True(t, created)

	held, err := store.Get(t.Context(), orderID(t, 1))
	require.NoError(t, err)
	assert.Equal(t, "alice", held.HolderID())
	assert.Equal(t, 2, store.Len())
}

func TestStore_TryCreate_RejectsZeroLock(t *testing.T) {
	_, err := memlock.NewStore().TryCreate(t.Context(), &editlock.Lock{})
	require.Error(t, err)
}

func TestStore_Get_Missing(t *testing.T) {
	_, err := memlock.NewStore().Get(t.Context(), orderID(t, 5))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_DeleteAcquiredBefore(t *testing.T) {
	store := memlock.NewStore()
	_, err := store.TryCreate(t.Context(), newLock(t, 1, "alice", start))
	require.NoError(t, err)

	deleted, err := store.DeleteAcquiredBefore(t.Context(), orderID(t, 1), start)
	require.NoError(t, err)
	assert.False(t, deleted, "cutoff equal to acquired_at keeps the lock")

	deleted, err = store.DeleteAcquiredBefore(t.Context(), orderID(t, 1), start.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteAcquiredBefore(t.Context(), orderID(t, 1), start.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_DeleteAllAcquiredBefore(t *testing.T) {
	store := memlock.NewStore()
	for i, at := range []time.Time{start.Add(-time.Minute), start.Add(-31 * time.Second), start.Add(-5 * time.Second)} {
		_, err := store.TryCreate(t.Context(), newLock(t, int64(i+1), "alice", at))
		require.NoError(t, err)
	}

	purged, err := store.DeleteAllAcquiredBefore(t.Context(), editlock.Cutoff(start, editlock.DefaultTTL))
	require.NoError(t, err)

	assert.Equal(t, int64(2), purged)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Delete_IsIdempotent(t *testing.T) {
	store := memlock.NewStore()
	_, err := store.TryCreate(t.Context(), newLock(t, 1, "alice", start))
	require.NoError(t, err)

	require.NoError(t, store.Delete(t.Context(), orderID(t, 1)))
	require.NoError(t, store.Delete(t.Context(), orderID(t, 1)))
	assert.Equal(t, 0, store.Len())
}

func TestStore_ConcurrentAcquireHasOneWinner(t *testing.T) {
	store := memlock.NewStore()
	handler := commands.NewAcquireEditLockCommandHandler(store, editlock.DefaultTTL, kernel.FixedClock(start))
	id := orderID(t, 42)

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
		held atomic.Int32
	)
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewAcquireEditLockCommand(id, fmt.Sprintf("user-%d", i))
			if err != nil {
				return
			}
			if _, err = handler.Handle(t.Context(), cmd); err == nil {
				wins.Add(1)
			} else if assert.ErrorIs(t, err, errs.ErrLockHeld) {
				held.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(49), held.Load())
}

func TestStore_ExpiredLockIsTakenOver(t *testing.T) {
	store := memlock.NewStore()
	now := start
	clock := func() time.Time { return now }
	handler := commands.NewAcquireEditLockCommandHandler(store, 30*time.Second, clock)

	aliceCmd, err := commands.NewAcquireEditLockCommand(orderID(t, 1), "alice")
	require.NoError(t, err)
	bobCmd, err := commands.NewAcquireEditLockCommand(orderID(t, 1), "bob")
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), aliceCmd)
	require.NoError(t, err)

	now = start.Add(30 * time.Second)
	_, err = handler.Handle(t.Context(), bobCmd)
	require.ErrorIs(t, err, errs.ErrLockHeld, "a lock exactly TTL old is still fresh")

	now = start.Add(31 * time.Second)
	lock, err := handler.Handle(t.Context(), bobCmd)
	require.NoError(t, err)
	assert.Equal(t, "bob", lock.HolderID())
}
