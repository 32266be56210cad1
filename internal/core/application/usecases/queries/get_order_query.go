package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its client, if the client still exists.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetOrderQueryResponse is the order snapshot. ClientID is the stored reference;
// Client is nil when there is no reference or the referenced client is gone.
type GetOrderQueryResponse struct {
	ID                   kernel.ID
	ClientID             *kernel.ID
	Client               *ports.ClientRecord
	CustomerName         string
	ContactName          string
	ProjectName          string
	Progress             order.Progress
	Document             order.DocumentTemplate
	CreatedAt            time.Time
	DesiredDeliveryDate  *time.Time
	ExpectedDeliveryDate *time.Time
}
