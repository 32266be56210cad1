package kernel

import (
	"fmt"
	"strconv"

	"orderdesk/internal/pkg/errs"
)

// ID identifies a persisted order, line item or client. Valid identifiers are
// strictly positive; the zero value means "not persisted yet".
type ID struct {
	value int64
}

// NewID validates and wraps a storage identifier.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// ParseID parses a decimal identifier, e.g. from a URL path segment.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// IDs converts raw identifiers, failing on the first invalid one.
func IDs(values ...int64) ([]ID, error) {
	ids := make([]ID, 0, len(values))
	for _, v := range values {
		id, err := NewID(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (id ID) Int64() int64 {
	return id.value
}

func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id.value == 0
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

func (id ID) Validate() error {
	if id.value <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	return nil
}
