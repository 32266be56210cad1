// Package order provides the Order aggregate and its progress state machine.
//
// The package includes:
//   - Order: the aggregate root holding the client snapshot, project details,
//     delivery dates and current progress
//   - Progress: the seven-state lifecycle and its static document table
//
// Key business rules:
//   - New orders start in Pending
//   - Any progress may move to any other progress; stricter policies belong to callers
//   - The customer and contact names are a snapshot taken at creation and never change
//   - The client reference is weak: it may be absent or point to a deleted client
package order
