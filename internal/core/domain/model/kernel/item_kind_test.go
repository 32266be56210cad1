package kernel_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemKind(t *testing.T) {
	testCases := []struct {
		input string
		want  kernel.ItemKind
	}{
		{"invoice", kernel.KindInvoice},
		{"cost", kernel.KindCost},
		{" Invoice ", kernel.KindInvoice},
		{"COST", kernel.KindCost},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			kind, err := kernel.ParseItemKind(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.want, kind)
		})
	}

	for _, bad := range []string{"", "estimate", "invoices"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := kernel.ParseItemKind(bad)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestItemKinds(t *testing.T) {
	assert.Equal(t, []kernel.ItemKind{kernel.KindInvoice, kernel.KindCost}, kernel.ItemKinds())
	require.Error(t, kernel.ItemKind("other").Validate())
}
