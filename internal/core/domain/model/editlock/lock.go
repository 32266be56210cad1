package editlock

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// DefaultTTL is how long a lock stays fresh without being released.
const DefaultTTL = 30 * time.Second

var ErrLockIsNotConstructed = errors.New("Lock must be created via NewLock or RestoreLock")

// Lock is the record held by one editor of an order.
type Lock struct {
	orderID    kernel.ID
	holderID   string
	token      kernel.LockToken
	acquiredAt time.Time

	isConstructed bool
}

// NewLock creates a fresh lock with a new token.
func NewLock(orderID kernel.ID, holderID string, acquiredAt time.Time) (*Lock, error) {
	holderID = strings.TrimSpace(holderID)

	var holderErr, acquiredErr error
	if holderID == "" {
		holderErr = errs.NewValueIsRequiredError("holder id")
	} else {
		holderErr = kernel.CheckLength("holder id", holderID, kernel.MaxNameLength)
	}
	if acquiredAt.IsZero() {
		acquiredErr = errs.NewValueIsRequiredError("acquired at")
	}
	if err := errors.Join(orderID.Validate(), holderErr, acquiredErr); err != nil {
		return nil, err
	}

	return &Lock{
		orderID:       orderID,
		holderID:      holderID,
		token:         kernel.NewLockToken(),
		acquiredAt:    acquiredAt,
		isConstructed: true,
	}, nil
}

// RestoreLock rebuilds a stored lock.
func RestoreLock(orderID kernel.ID, holderID string, token kernel.LockToken, acquiredAt time.Time) (*Lock, error) {
	if err := errors.Join(orderID.Validate(), token.Validate()); err != nil {
		return nil, err
	}

	return &Lock{
		orderID:       orderID,
		holderID:      holderID,
		token:         token,
		acquiredAt:    acquiredAt,
		isConstructed: true,
	}, nil
}

func (l *Lock) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockIsNotConstructed
	}
	return nil
}

func (l *Lock) OrderID() kernel.ID {
	return l.orderID
}

func (l *Lock) HolderID() string {
	return l.holderID
}

func (l *Lock) Token() kernel.LockToken {
	return l.token
}

func (l *Lock) AcquiredAt() time.Time {
	return l.acquiredAt
}

// IsExpired reports whether the lock is older than ttl at now.
// A lock exactly ttl old is still fresh.
func (l *Lock) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(l.acquiredAt) > ttl
}

// ExpiresAt is the last instant at which the lock is still fresh.
func (l *Lock) ExpiresAt(ttl time.Duration) time.Time {
	return l.acquiredAt.Add(ttl)
}

// HeldError describes this lock to a caller that failed to acquire it.
func (l *Lock) HeldError() *errs.LockHeldError {
	return errs.NewLockHeldError(l.orderID.Int64(), l.holderID, l.acquiredAt)
}

// Cutoff returns the acquisition time before which a lock is expired at now.
func Cutoff(now time.Time, ttl time.Duration) time.Time {
	return now.Add(-ttl)
}
