package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads orders and resolves their weak client reference.
type GetOrderQueryHandler struct {
	db      *gorm.DB
	clients ports.ClientDirectory
}

func NewGetOrderQueryHandler(db *gorm.DB, clients ports.ClientDirectory) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, clients: clients}
}

// Handle returns the order or an ObjectNotFoundError. A dangling client
// reference is not an error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row, err := loadOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	progress, err := row.progress()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	id, err := kernel.NewID(row.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:                   id,
		ClientID:             row.clientID(),
		CustomerName:         row.CustomerName,
		ContactName:          row.ContactName,
		ProjectName:          row.ProjectName,
		Progress:             progress,
		Document:             progress.Document().Render(row.ProjectName),
		CreatedAt:            row.CreatedAt,
		DesiredDeliveryDate:  nullTime(row.DesiredDeliveryDate),
		ExpectedDeliveryDate: nullTime(row.ExpectedDeliveryDate),
	}

	if resp.ClientID != nil && h.clients != nil {
		client, found, findErr := h.clients.Find(ctx, *resp.ClientID)
		if findErr != nil {
			return GetOrderQueryResponse{}, findErr
		}
		if found {
			resp.Client = client
		}
	}

	return resp, nil
}
