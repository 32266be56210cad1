// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderDTO is the orders table row. client_id is a weak reference and carries
// no foreign key; customer and contact names are snapshots.
type OrderDTO struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	ClientID             *int64    `gorm:"index"`
	CustomerName         string    `gorm:"size:255;not null"`
	ContactName          string    `gorm:"size:255;not null;default:''"`
	ProjectName          string    `gorm:"size:255;not null;default:''"`
	Progress             int       `gorm:"type:smallint;not null;index"`
	CreatedAt            time.Time `gorm:"not null"`
	DesiredDeliveryDate  *time.Time
	ExpectedDeliveryDate *time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var clientID *int64
	if id := aggregate.ClientID(); id != nil {
		raw := id.Int64()
		clientID = &raw
	}

	return OrderDTO{
		ID:                   aggregate.ID().Int64(),
		ClientID:             clientID,
		CustomerName:         aggregate.CustomerName(),
		ContactName:          aggregate.ContactName(),
		ProjectName:          aggregate.ProjectName(),
		Progress:             int(aggregate.Progress()),
		CreatedAt:            aggregate.CreatedAt(),
		DesiredDeliveryDate:  aggregate.DesiredDeliveryDate(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	// A stored client reference that is not a valid identifier is treated as none.
	var clientID *kernel.ID
	if dto.ClientID != nil {
		if cID, idErr := kernel.NewID(*dto.ClientID); idErr == nil {
			clientID = &cID
		}
	}

	return order.RestoreOrder(id, order.Details{
		ClientID:             clientID,
		CustomerName:         dto.CustomerName,
		ContactName:          dto.ContactName,
		ProjectName:          dto.ProjectName,
		DesiredDeliveryDate:  dto.DesiredDeliveryDate,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
	}, order.Progress(dto.Progress), dto.CreatedAt)
}
