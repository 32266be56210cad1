// Package services provides domain services for order line items that do not
// belong to a single aggregate.
//
// The package includes:
//   - ReconciliationPlanner: turns a submitted list into the rows to write
//   - DocumentRenderer: derives missing prices and amounts and renders the
//     plain-text item block with its ceiling-rounded grand total
//
// Both services are pure: they never touch storage and never read the clock.
package services
