// Package errs provides standardized error types for the order desk.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure class the core reports:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: bad input,
//     rejected before any I/O (see IsInvalidArgument)
//   - ObjectNotFoundError: a referenced order or record is absent
//   - LockHeldError: another editor holds a fresh edit lock on the order
//   - StorageError: the persistence layer failed; the enclosing transaction is rolled back
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
