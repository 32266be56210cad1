package queries

import (
	"context"
	"database/sql"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRow struct {
	ID                   int64
	ClientID             sql.NullInt64
	CustomerName         string
	ContactName          string
	ProjectName          string
	Progress             int
	CreatedAt            time.Time
	DesiredDeliveryDate  sql.NullTime
	ExpectedDeliveryDate sql.NullTime
}

func loadOrder(ctx context.Context, db *gorm.DB, id kernel.ID) (*orderRow, error) {
	var rows []orderRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			customer_name,
			contact_name,
			project_name,
			progress,
			created_at,
			desired_delivery_date,
			expected_delivery_date
		FROM orders
		WHERE id = ?
	`, id.Int64()).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStorageErrorWithCause("read order", err)
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.Int64())
	}
	return &rows[0], nil
}

func (r *orderRow) progress() (order.Progress, error) {
	return order.NewProgress(r.Progress)
}

func (r *orderRow) clientID() *kernel.ID {
	if !r.ClientID.Valid {
		return nil
	}
	id, err := kernel.NewID(r.ClientID.Int64)
	if err != nil {
		return nil
	}
	return &id
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

type lineItemRow struct {
	ID          int64
	OrderID     int64
	Kind        string
	ProductName string
	UnitPrice   decimal.NullDecimal
	Quantity    decimal.NullDecimal
	Amount      decimal.NullDecimal
	Unit        string
	Remarks     string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func loadLineItems(
	ctx context.Context,
	db *gorm.DB,
	orderID kernel.ID,
	kind kernel.ItemKind,
) ([]*lineitem.LineItem, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			kind,
			product_name,
			unit_price,
			quantity,
			amount,
			unit,
			remarks,
			sort_order,
			created_at,
			updated_at
		FROM order_line_items
		WHERE order_id = ? AND kind = ?
		ORDER BY sort_order, id
	`, orderID.Int64(), kind.String()).Rows()
	if err != nil {
		return nil, errs.NewStorageErrorWithCause("read line items", err)
	}
	defer rows.Close()

	items := make([]*lineitem.LineItem, 0)
	for rows.Next() {
		var row lineItemRow
		if err = rows.Scan(
			&row.ID,
			&row.OrderID,
			&row.Kind,
			&row.ProductName,
			&row.UnitPrice,
			&row.Quantity,
			&row.Amount,
			&row.Unit,
			&row.Remarks,
			&row.SortOrder,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, errs.NewStorageErrorWithCause("scan line item", err)
		}

		item, itemErr := row.toDomain()
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageErrorWithCause("read line items", err)
	}

	return items, nil
}

func (r lineItemRow) toDomain() (*lineitem.LineItem, error) {
	id, err := kernel.NewID(r.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(r.OrderID)
	if err != nil {
		return nil, err
	}

	return lineitem.RestoreLineItem(id, orderID, kernel.ItemKind(r.Kind), lineitem.Fields{
		ProductName: r.ProductName,
		UnitPrice:   r.UnitPrice.Decimal,
		Quantity:    r.Quantity.Decimal,
		Amount:      r.Amount.Decimal,
		Unit:        r.Unit,
		Remarks:     r.Remarks,
	}, r.SortOrder, r.CreatedAt, r.UpdatedAt)
}

// requireOrder reports NotFound for an order that does not exist.
func requireOrder(ctx context.Context, db *gorm.DB, id kernel.ID) error {
	_, err := loadOrder(ctx, db, id)
	return err
}
