// Package lineitemrepo is the line-item store: one table holding both the
// invoice and cost collections, partitioned by the kind column.
package lineitemrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"

	"github.com/shopspring/decimal"
)

type LineItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index:idx_order_line_items_collection,priority:1"`
	Kind        string          `gorm:"size:16;not null;index:idx_order_line_items_collection,priority:2"`
	ProductName string          `gorm:"size:255;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Quantity    decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Unit        string          `gorm:"size:32;not null;default:''"`
	Remarks     string          `gorm:"type:text;not null;default:''"`
	SortOrder   int             `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(item *lineitem.LineItem) LineItemDTO {
	return LineItemDTO{
		ID:          item.ID().Int64(),
		OrderID:     item.OrderID().Int64(),
		Kind:        item.Kind().String(),
		ProductName: item.ProductName(),
		UnitPrice:   item.UnitPrice(),
		Quantity:    item.Quantity(),
		Amount:      item.Amount(),
		Unit:        item.Unit(),
		Remarks:     item.Remarks(),
		SortOrder:   item.SortOrder(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

func toDomain(dto LineItemDTO) (*lineitem.LineItem, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return lineitem.RestoreLineItem(id, orderID, kernel.ItemKind(dto.Kind), lineitem.Fields{
		ProductName: dto.ProductName,
		UnitPrice:   dto.UnitPrice,
		Quantity:    dto.Quantity,
		Amount:      dto.Amount,
		Unit:        dto.Unit,
		Remarks:     dto.Remarks,
	}, dto.SortOrder, dto.CreatedAt, dto.UpdatedAt)
}
