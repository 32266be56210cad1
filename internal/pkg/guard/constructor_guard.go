// Package guard holds the constructor guard used by commands, queries and
// domain objects to tell constructor-built values apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a
// struct, set it with NewConstructorGuard inside the constructor, and call
// Validate before the value is used:
//
//	var ErrReconcileItemsCommandIsNotConstructed = errors.New("...")
//
//	func (c ReconcileItemsCommand) Validate() error {
//	    return c.guard.Validate(ErrReconcileItemsCommandIsNotConstructed)
//	}
//
// A zero-value struct carries a zero-value guard and fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
