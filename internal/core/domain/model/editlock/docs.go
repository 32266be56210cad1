// Package editlock models the advisory per-order edit lock.
//
// A lock is keyed by order and records who holds it and since when. It expires
// on its own once its age exceeds the TTL, so a crashed holder never blocks an
// order for longer than that.
package editlock
