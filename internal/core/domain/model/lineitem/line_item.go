package lineitem

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via FromSubmission or RestoreLineItem")

// Fields is the editable content of a line item. Monetary values are kept as
// submitted; a zero value means "not given".
type Fields struct {
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Amount      decimal.Decimal
	Unit        string
	Remarks     string
}

// Submission is one entry of a client-submitted list. ID is the stored
// identifier the client believes the row has; zero or negative means new.
type Submission struct {
	ID int64
	Fields
}

// IsBlank reports whether the entry has no product name once trimmed.
// Blank entries are never persisted.
func (s Submission) IsBlank() bool {
	return strings.TrimSpace(s.ProductName) == ""
}

// ExistingID returns the submitted identifier when it can refer to a stored row.
func (s Submission) ExistingID() (kernel.ID, bool) {
	if s.ID <= 0 {
		return kernel.ID{}, false
	}
	id, err := kernel.NewID(s.ID)
	if err != nil {
		return kernel.ID{}, false
	}
	return id, true
}

// LineItem is a persisted or about-to-be-persisted row of an order collection.
type LineItem struct {
	id        kernel.ID
	orderID   kernel.ID
	kind      kernel.ItemKind
	fields    Fields
	sortOrder int
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// FromSubmission builds the row to write for a non-blank submission.
// The identifier is carried over when the submission refers to an existing row;
// storage decides whether that row really exists.
func FromSubmission(
	orderID kernel.ID,
	kind kernel.ItemKind,
	sub Submission,
	sortOrder int,
	now time.Time,
) (*LineItem, error) {
	if err := errors.Join(orderID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	if sub.IsBlank() {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if sortOrder < 1 {
		return nil, errs.NewValueIsOutOfRangeError("sort order", sortOrder, 1, "unbounded")
	}

	id, _ := sub.ExistingID()
	fields := sub.Fields
	fields.ProductName = strings.TrimSpace(fields.ProductName)
	if err := errors.Join(
		kernel.CheckLength("product name", fields.ProductName, kernel.MaxNameLength),
		kernel.CheckLength("unit", fields.Unit, kernel.MaxUnitLength),
	); err != nil {
		return nil, err
	}

	return &LineItem{
		id:            id,
		orderID:       orderID,
		kind:          kind,
		fields:        fields,
		sortOrder:     sortOrder,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreLineItem rebuilds a stored row without re-applying submission rules.
func RestoreLineItem(
	id, orderID kernel.ID,
	kind kernel.ItemKind,
	fields Fields,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*LineItem, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	return &LineItem{
		id:            id,
		orderID:       orderID,
		kind:          kind,
		fields:        fields,
		sortOrder:     sortOrder,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID is zero until the row has been inserted.
func (l *LineItem) ID() kernel.ID              { return l.id }
func (l *LineItem) OrderID() kernel.ID         { return l.orderID }
func (l *LineItem) Kind() kernel.ItemKind      { return l.kind }
func (l *LineItem) Fields() Fields             { return l.fields }
func (l *LineItem) ProductName() string        { return l.fields.ProductName }
func (l *LineItem) UnitPrice() decimal.Decimal { return l.fields.UnitPrice }
func (l *LineItem) Quantity() decimal.Decimal  { return l.fields.Quantity }
func (l *LineItem) Amount() decimal.Decimal    { return l.fields.Amount }
func (l *LineItem) Unit() string               { return l.fields.Unit }
func (l *LineItem) Remarks() string            { return l.fields.Remarks }
func (l *LineItem) SortOrder() int             { return l.sortOrder }
func (l *LineItem) CreatedAt() time.Time       { return l.createdAt }
func (l *LineItem) UpdatedAt() time.Time       { return l.updatedAt }

// IsNew reports whether the row still has to be inserted.
func (l *LineItem) IsNew() bool {
	return l.id.IsZero()
}
