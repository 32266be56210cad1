package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
)

// ChatRecordRepository is the discussion store owned by another module.
// The order core only ever removes an order's records when the order goes away.
type ChatRecordRepository interface {
	DeleteByOrder(ctx context.Context, orderID kernel.ID) (int64, error)
}
