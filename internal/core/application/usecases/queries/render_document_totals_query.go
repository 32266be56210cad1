package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRenderDocumentTotalsQueryIsNotConstructed = errors.New(
	"RenderDocumentTotalsQuery must be created via NewRenderDocumentTotalsQuery constructor",
)

// RenderDocumentTotalsQuery renders the document for an order's current progress
// with the items of one collection.
type RenderDocumentTotalsQuery struct {
	orderID kernel.ID
	kind    kernel.ItemKind

	guard guard.ConstructorGuard
}

func NewRenderDocumentTotalsQuery(orderID kernel.ID, kind kernel.ItemKind) (RenderDocumentTotalsQuery, error) {
	if err := errors.Join(orderID.Validate(), kind.Validate()); err != nil {
		return RenderDocumentTotalsQuery{}, err
	}
	return RenderDocumentTotalsQuery{orderID: orderID, kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (q RenderDocumentTotalsQuery) Validate() error {
	return q.guard.Validate(ErrRenderDocumentTotalsQueryIsNotConstructed)
}

func (q RenderDocumentTotalsQuery) OrderID() kernel.ID {
	return q.orderID
}

func (q RenderDocumentTotalsQuery) Kind() kernel.ItemKind {
	return q.kind
}

// RenderDocumentTotalsResponse carries the plain-text block embedded in emails
// and previews. Body is Message, a blank line, then LineText.
type RenderDocumentTotalsResponse struct {
	OrderID    kernel.ID
	Kind       kernel.ItemKind
	Progress   order.Progress
	Title      string
	Message    string
	LineText   string
	Body       string
	GrandTotal decimal.Decimal
	Lines      []services.RenderedLine
}
