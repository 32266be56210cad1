package commands_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeExpiredEditLocksCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	repo := new(MockEditLockRepository)
	repo.On("DeleteAllAcquiredBefore", ctx, fixedNow.Add(-45*time.Second)).Return(int64(2), nil).Once()

	h := commands.NewPurgeExpiredEditLocksCommandHandler(repo, 45*time.Second, kernel.FixedClock(fixedNow))
	purged, err := h.Handle(ctx, commands.NewPurgeExpiredEditLocksCommand())

	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)
	repo.AssertExpectations(t)
}

func TestPurgeExpiredEditLocksCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewPurgeExpiredEditLocksCommandHandler(new(MockEditLockRepository), 0, kernel.SystemClock)

	_, err := h.Handle(t.Context(), commands.PurgeExpiredEditLocksCommand{})

	require.ErrorIs(t, err, commands.ErrPurgeExpiredEditLocksCommandIsNotConstructed)
}
