package queries

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery reads one line-item collection of an order.
type GetOrderItemsQuery struct {
	orderID kernel.ID
	kind    kernel.ItemKind

	guard guard.ConstructorGuard
}

func NewGetOrderItemsQuery(orderID kernel.ID, kind kernel.ItemKind) (GetOrderItemsQuery, error) {
	if err := errors.Join(orderID.Validate(), kind.Validate()); err != nil {
		return GetOrderItemsQuery{}, err
	}
	return GetOrderItemsQuery{orderID: orderID, kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

func (q GetOrderItemsQuery) OrderID() kernel.ID {
	return q.orderID
}

func (q GetOrderItemsQuery) Kind() kernel.ItemKind {
	return q.kind
}

// GetOrderItemsQueryResponse is one stored line item, values as persisted.
type GetOrderItemsQueryResponse struct {
	ID          kernel.ID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Amount      decimal.Decimal
	Unit        string
	Remarks     string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
