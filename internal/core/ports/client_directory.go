package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
)

// ClientRecord is what the order core reads about a client.
type ClientRecord struct {
	ID   kernel.ID
	Name string
}

// ClientDirectory looks up clients referenced by orders. A reference may dangle:
// Find then reports found=false with a nil error.
type ClientDirectory interface {
	Find(ctx context.Context, id kernel.ID) (*ClientRecord, bool, error)
}
