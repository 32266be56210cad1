// Package queries contains read-only operations over orders and line items.
// Queries read straight from the database with SQL and never go through the
// unit of work; they see committed state only.
package queries
