// Package kernel contains the shared value objects of the order desk domain:
// positive numeric identifiers, the line-item kind partition, edit-lock tokens
// and the clock abstraction used wherever the domain stamps time.
//
// Value objects here validate on construction and are immutable afterwards.
package kernel
