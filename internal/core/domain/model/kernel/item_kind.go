package kernel

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// ItemKind partitions an order's line items into two independent collections.
// Both collections share one structure but are never mixed in a single reconciliation.
type ItemKind string

const (
	// KindInvoice items are billed to the client.
	KindInvoice ItemKind = "invoice"
	// KindCost items track internal costs and never appear on client documents
	// unless explicitly rendered.
	KindCost ItemKind = "cost"
)

// ItemKinds returns every valid kind in cascade-deletion order.
func ItemKinds() []ItemKind {
	return []ItemKind{KindInvoice, KindCost}
}

// ParseItemKind accepts the wire name of a kind, ignoring case and surrounding spaces.
func ParseItemKind(s string) (ItemKind, error) {
	kind := ItemKind(strings.ToLower(strings.TrimSpace(s)))
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

func (k ItemKind) Validate() error {
	switch k {
	case KindInvoice, KindCost:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"kind",
			fmt.Errorf("%q is not one of %q, %q", string(k), KindInvoice, KindCost),
		)
	}
}

func (k ItemKind) String() string {
	return string(k)
}
