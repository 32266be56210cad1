package lineitem_test

import (
	"strings"
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func TestSubmission_IsBlank(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		blank bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n ", true},
		{"named", "Poster A2", false},
		{"padded name", "  Poster A2  ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub := lineitem.Submission{Fields: lineitem.Fields{ProductName: tc.input}}
			assert.Equal(t, tc.blank, sub.IsBlank())
		})
	}
}

func TestSubmission_ExistingID(t *testing.T) {
	for _, raw := range []int64{0, -1, -99} {
		_, ok := lineitem.Submission{ID: raw}.ExistingID()
		assert.False(t, ok, "id %d", raw)
	}

	id, ok := lineitem.Submission{ID: 12}.ExistingID()
	require.True(t, ok)
	assert.Equal(t, int64(12), id.Int64())
}

func TestFromSubmission(t *testing.T) {
	orderID := mustID(t, 1)

	t.Run("new row", func(t *testing.T) {
		sub := lineitem.Submission{Fields: lineitem.Fields{
			ProductName: "  Flyer ",
			UnitPrice:   decimal.NewFromInt(100),
			Quantity:    decimal.NewFromInt(3),
			Unit:        "pcs",
		}}

		item, err := lineitem.FromSubmission(orderID, kernel.KindInvoice, sub, 2, now)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.IsNew())
		assert.Equal(t, "Flyer", item.ProductName())
		assert.Equal(t, 2, item.SortOrder())
		assert.True(t, item.Amount().IsZero(), "amount is stored as submitted")
		assert.Equal(t, now, item.CreatedAt())
		assert.Equal(t, now, item.UpdatedAt())
	})

	t.Run("existing row keeps its id", func(t *testing.T) {
		sub := lineitem.Submission{ID: 5, Fields: lineitem.Fields{ProductName: "Flyer"}}

		item, err := lineitem.FromSubmission(orderID, kernel.KindCost, sub, 1, now)

		require.NoError(t, err)
		assert.False(t, item.IsNew())
		assert.Equal(t, int64(5), item.ID().Int64())
		assert.Equal(t, kernel.KindCost, item.Kind())
	})

	t.Run("blank name", func(t *testing.T) {
		sub := lineitem.Submission{Fields: lineitem.Fields{ProductName: " "}}

		_, err := lineitem.FromSubmission(orderID, kernel.KindInvoice, sub, 1, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid kind and order", func(t *testing.T) {
		sub := lineitem.Submission{Fields: lineitem.Fields{ProductName: "Flyer"}}

		_, err := lineitem.FromSubmission(kernel.ID{}, kernel.ItemKind("misc"), sub, 1, now)

		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
	})

	t.Run("sort order starts at one", func(t *testing.T) {
		sub := lineitem.Submission{Fields: lineitem.Fields{ProductName: "Flyer"}}

		_, err := lineitem.FromSubmission(orderID, kernel.KindInvoice, sub, 0, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("text longer than its column", func(t *testing.T) {
		sub := lineitem.Submission{Fields: lineitem.Fields{
			ProductName: strings.Repeat("p", kernel.MaxNameLength+1),
			Unit:        strings.Repeat("u", kernel.MaxUnitLength+1),
		}}

		item, err := lineitem.FromSubmission(orderID, kernel.KindInvoice, sub, 1, now)

		assert.Nil(t, item)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "unit")
	})

	t.Run("text at its column width", func(t *testing.T) {
		sub := lineitem.Submission{Fields: lineitem.Fields{
			ProductName: strings.Repeat("p", kernel.MaxNameLength),
			Unit:        strings.Repeat("u", kernel.MaxUnitLength),
		}}

		_, err := lineitem.FromSubmission(orderID, kernel.KindInvoice, sub, 1, now)

		require.NoError(t, err)
	})
}

func TestRestoreLineItem(t *testing.T) {
	created := now.Add(-time.Hour)
	item, err := lineitem.RestoreLineItem(
		mustID(t, 7), mustID(t, 1), kernel.KindInvoice,
		lineitem.Fields{ProductName: "Banner", Amount: decimal.RequireFromString("150.4")},
		3, created, now,
	)

	require.NoError(t, err)
	assert.Equal(t, "150.4", item.Amount().String())
	assert.Equal(t, created, item.CreatedAt())
	assert.Equal(t, now, item.UpdatedAt())

	_, err = lineitem.RestoreLineItem(kernel.ID{}, mustID(t, 1), kernel.KindInvoice, lineitem.Fields{}, 1, now, now)
	require.Error(t, err)
}

func TestLineItem_Validate_ZeroValue(t *testing.T) {
	require.ErrorIs(t, (&lineitem.LineItem{}).Validate(), lineitem.ErrLineItemIsNotConstructed)
}
