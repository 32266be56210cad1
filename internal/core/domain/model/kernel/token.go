package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLockTokenIsNotConstructed = errs.NewValueIsRequiredError(
	"LockToken must be created via NewLockToken or LockTokenFromString",
)

// LockToken uniquely identifies one successful edit-lock acquisition. Two
// acquisitions of the same order by the same holder still get different tokens.
type LockToken struct {
	id uuid.UUID
}

func NewLockToken() LockToken {
	return LockToken{id: uuid.New()}
}

func LockTokenFromString(s string) (LockToken, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return LockToken{}, fmt.Errorf("invalid lock token format: %w", err)
	}
	token := LockToken{id: id}
	if err = token.Validate(); err != nil {
		return LockToken{}, err
	}
	return token, nil
}

func (t LockToken) String() string {
	return t.id.String()
}

func (t LockToken) UUID() uuid.UUID {
	return t.id
}

func (t LockToken) IsEqual(other LockToken) bool {
	return t.id == other.id
}

func (t LockToken) Validate() error {
	if t.id == uuid.Nil {
		return ErrLockTokenIsNotConstructed
	}
	return nil
}
