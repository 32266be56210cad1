// Package editlock keeps edit locks in process memory. It serves a single
// instance deployment or tests; locks are lost on restart and are not shared
// between processes.
package editlock

import (
	"context"
	"sync"
	"time"

	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// Store is a mutex-guarded map of order id to lock.
type Store struct {
	mu    sync.Mutex
	locks map[int64]*editlock.Lock
}

func NewStore() *Store {
	return &Store{locks: make(map[int64]*editlock.Lock)}
}

func (s *Store) TryCreate(_ context.Context, lock *editlock.Lock) (bool, error) {
	if err := lock.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := lock.OrderID().Int64()
	if _, held := s.locks[key]; held {
		return false, nil
	}
	s.locks[key] = lock
	return true, nil
}

func (s *Store) Get(_ context.Context, orderID kernel.ID) (*editlock.Lock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[orderID.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("edit lock", orderID.Int64())
	}
	return lock, nil
}

func (s *Store) DeleteAcquiredBefore(_ context.Context, orderID kernel.ID, cutoff time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := orderID.Int64()
	lock, ok := s.locks[key]
	if !ok || !lock.AcquiredAt().Before(cutoff) {
		return false, nil
	}
	delete(s.locks, key)
	return true, nil
}

func (s *Store) Delete(_ context.Context, orderID kernel.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.locks, orderID.Int64())
	return nil
}

func (s *Store) DeleteAllAcquiredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for key, lock := range s.locks {
		if lock.AcquiredAt().Before(cutoff) {
			delete(s.locks, key)
			n++
		}
	}
	return n, nil
}

// Len is the number of locks currently stored, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
