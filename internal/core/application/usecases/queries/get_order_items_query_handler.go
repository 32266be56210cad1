package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderItemsQueryHandler lists a collection in sort order.
type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when the order does not exist, so a
// deleted order is never mistaken for an empty one.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := requireOrder(ctx, h.db, query.OrderID()); err != nil {
		return nil, err
	}

	items, err := loadLineItems(ctx, h.db, query.OrderID(), query.Kind())
	if err != nil {
		return nil, err
	}

	resp := make([]GetOrderItemsQueryResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, GetOrderItemsQueryResponse{
			ID:          item.ID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Amount:      item.Amount(),
			Unit:        item.Unit(),
			Remarks:     item.Remarks(),
			SortOrder:   item.SortOrder(),
			CreatedAt:   item.CreatedAt(),
			UpdatedAt:   item.UpdatedAt(),
		})
	}

	return resp, nil
}
