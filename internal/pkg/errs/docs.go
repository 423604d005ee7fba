// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - PermissionDeniedError: For when the caller lacks authority for an operation
//   - FailedPreconditionError: For when an object's state rejects an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The kinds surfaced to API callers map one-to-one onto the transport error
// taxonomy: ValueIsRequired, ValueIsInvalid and ObjectNotFound as invalid
// argument, PermissionDenied as permission denied, and FailedPrecondition as
// failed precondition.
package errs
