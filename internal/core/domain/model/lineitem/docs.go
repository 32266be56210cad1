// Package lineitem models the priced rows attached to an order.
//
// An order owns two independent collections of line items, partitioned by
// kernel.ItemKind. Both collections share the same shape. A collection is only
// ever rewritten as a whole by reconciliation, so line items have no behavior of
// their own beyond carrying a validated snapshot of what the caller submitted.
package lineitem
