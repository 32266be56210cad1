package lineitemrepo

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLineItemRepository implements LineItemRepository using GORM.
type GormLineItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormLineItemRepository(db *gorm.DB, tracker aggregateTracker) *GormLineItemRepository {
	return &GormLineItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get returns the (order, kind) collection ordered by sort order, then id.
func (r *GormLineItemRepository) Get(
	ctx context.Context,
	orderID kernel.ID,
	kind kernel.ItemKind,
) ([]*lineitem.LineItem, error) {
	var dtos []LineItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND kind = ?", orderID.Int64(), kind.String()).
		Order("sort_order, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageErrorWithCause("read line items", err)
	}

	items := make([]*lineitem.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Upsert updates the row with the item's id inside its (order, kind) collection,
// or inserts a new row when the item has no id or no such row exists.
// created_at is never rewritten by an update.
func (r *GormLineItemRepository) Upsert(ctx context.Context, item *lineitem.LineItem) (kernel.ID, error) {
	if err := item.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(item)
	db := r.db.WithContext(ctx)

	if dto.ID > 0 {
		result := db.Model(&LineItemDTO{}).
			Where("id = ? AND order_id = ? AND kind = ?", dto.ID, dto.OrderID, dto.Kind).
			Updates(map[string]any{
				"product_name": dto.ProductName,
				"unit_price":   dto.UnitPrice,
				"quantity":     dto.Quantity,
				"amount":       dto.Amount,
				"unit":         dto.Unit,
				"remarks":      dto.Remarks,
				"sort_order":   dto.SortOrder,
				"updated_at":   dto.UpdatedAt,
			})
		if result.Error != nil {
			return kernel.ID{}, errs.NewStorageErrorWithCause("update line item", result.Error)
		}
		if result.RowsAffected > 0 {
			r.tracker.TrackAggregate(item.ID(), item)
			return item.ID(), nil
		}
	}

	dto.ID = 0
	if err := db.Create(&dto).Error; err != nil {
		return kernel.ID{}, errs.NewStorageErrorWithCause("insert line item", err)
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return kernel.ID{}, errs.NewStorageErrorWithCause("insert line item", err)
	}

	r.tracker.TrackAggregate(id, item)
	return id, nil
}

// DeleteWhere removes the rows of the collection not listed in keep.
func (r *GormLineItemRepository) DeleteWhere(
	ctx context.Context,
	orderID kernel.ID,
	kind kernel.ItemKind,
	keep []kernel.ID,
) (int64, error) {
	query := r.db.WithContext(ctx).Where("order_id = ? AND kind = ?", orderID.Int64(), kind.String())
	if len(keep) > 0 {
		ids := make([]int64, 0, len(keep))
		for _, id := range keep {
			ids = append(ids, id.Int64())
		}
		query = query.Where("id NOT IN ?", ids)
	}

	result := query.Delete(&LineItemDTO{})
	if result.Error != nil {
		return 0, errs.NewStorageErrorWithCause("delete line items", result.Error)
	}

	return result.RowsAffected, nil
}
