// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// Two groups of errors live here:
//   - Generic validation errors (ValueIsRequiredError, ValueIsInvalidError,
//     ObjectNotFoundError, ...) raised by value objects and repositories.
//   - The fulfillment taxonomy (InvalidTransition, UnknownBarcode,
//     AlreadyAssigned, PaymentNotReconciled, ...) raised by the order state
//     machine and its subsystems.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrAlreadyVerified)
//   - a struct type carrying the failure details
//   - constructor functions, with and without cause where applicable
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps each sentinel to a response status code.
package errs
