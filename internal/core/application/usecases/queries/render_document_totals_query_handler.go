package queries

import (
	"context"

	"orderdesk/internal/core/domain/services"

	"gorm.io/gorm"
)

// RenderDocumentTotalsQueryHandler produces document text and the grand total.
//
// Example:
//
//	query, _ := NewRenderDocumentTotalsQuery(orderID, kernel.KindInvoice)
//	doc, err := handler.Handle(ctx, query)
//	// doc.Title    "Invoice"
//	// doc.LineText "Flyer：100円 × 3pcs = 300円\n合計：300円"
type RenderDocumentTotalsQueryHandler struct {
	db       *gorm.DB
	renderer services.DocumentRenderer
}

func NewRenderDocumentTotalsQueryHandler(db *gorm.DB) RenderDocumentTotalsQueryHandler {
	return RenderDocumentTotalsQueryHandler{db: db, renderer: services.NewDocumentRenderer()}
}

func (h RenderDocumentTotalsQueryHandler) Handle(
	ctx context.Context,
	query RenderDocumentTotalsQuery,
) (RenderDocumentTotalsResponse, error) {
	if err := query.Validate(); err != nil {
		return RenderDocumentTotalsResponse{}, err
	}

	row, err := loadOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return RenderDocumentTotalsResponse{}, err
	}
	progress, err := row.progress()
	if err != nil {
		return RenderDocumentTotalsResponse{}, err
	}

	items, err := loadLineItems(ctx, h.db, query.OrderID(), query.Kind())
	if err != nil {
		return RenderDocumentTotalsResponse{}, err
	}

	doc := progress.Document().Render(row.ProjectName)
	totals := h.renderer.Render(items)

	return RenderDocumentTotalsResponse{
		OrderID:    query.OrderID(),
		Kind:       query.Kind(),
		Progress:   progress,
		Title:      doc.Title,
		Message:    doc.Message,
		LineText:   totals.LineText,
		Body:       doc.Message + "\n\n" + totals.LineText,
		GrandTotal: totals.GrandTotal,
		Lines:      totals.Lines,
	}, nil
}
