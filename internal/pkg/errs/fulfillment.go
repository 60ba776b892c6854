package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fulfillment workflow. Every failure an operation
// can surface to a caller unwraps to exactly one of these, which is what the
// HTTP adapter uses to pick a response code.
var (
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrPreconditionNotMet     = errors.New("precondition not met")
	ErrUnknownBarcode         = errors.New("unknown barcode")
	ErrAlreadyVerified        = errors.New("already verified")
	ErrOrderNotReady          = errors.New("order not ready")
	ErrInactiveAssignee       = errors.New("inactive assignee")
	ErrAlreadyAssigned        = errors.New("already assigned")
	ErrMethodMismatch         = errors.New("method mismatch")
	ErrNotAssignedToMessenger = errors.New("not assigned to messenger")
	ErrPaymentNotReconciled   = errors.New("payment not reconciled")
	ErrConcurrentConflict     = errors.New("concurrent conflict")
	ErrOperationNotAllowed    = errors.New("operation not allowed for role")
)

// InvalidTransitionError indicates a status change that is not a legal
// successor of the order's current status.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// source and target statuses.
func NewInvalidTransitionError(from, to string) InvalidTransitionError {
	return InvalidTransitionError{From: from, To: to}
}

func (e InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PreconditionNotMetError indicates a transition whose side-effecting
// precondition (checklist, assignment, reconciliation) is unmet.
type PreconditionNotMetError struct {
	Reason string
}

// NewPreconditionNotMetError creates a PreconditionNotMetError with the
// human-readable reason the precondition failed.
func NewPreconditionNotMetError(reason string) PreconditionNotMetError {
	return PreconditionNotMetError{Reason: reason}
}

func (e PreconditionNotMetError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrPreconditionNotMet, e.Reason))
}

func (e PreconditionNotMetError) Unwrap() error {
	return ErrPreconditionNotMet
}

// UnknownBarcodeError indicates a scan that matched no checklist line of the
// order, by barcode or by internal product code.
type UnknownBarcodeError struct {
	Barcode string
}

// NewUnknownBarcodeError creates an UnknownBarcodeError for the scanned value.
func NewUnknownBarcodeError(barcode string) UnknownBarcodeError {
	return UnknownBarcodeError{Barcode: barcode}
}

func (e UnknownBarcodeError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrUnknownBarcode, e.Barcode))
}

func (e UnknownBarcodeError) Unwrap() error {
	return ErrUnknownBarcode
}

// AlreadyVerifiedError indicates a scan beyond the required quantity of a
// checklist line.
type AlreadyVerifiedError struct {
	Barcode  string
	Required int
}

// NewAlreadyVerifiedError creates an AlreadyVerifiedError for a line that has
// already reached its required scan count.
func NewAlreadyVerifiedError(barcode string, required int) AlreadyVerifiedError {
	return AlreadyVerifiedError{Barcode: barcode, Required: required}
}

func (e AlreadyVerifiedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s already scanned %d of %d", ErrAlreadyVerified, e.Barcode, e.Required, e.Required))
}

func (e AlreadyVerifiedError) Unwrap() error {
	return ErrAlreadyVerified
}

// OrderNotReadyError indicates an assignment attempt on an order that is not
// in the ready-for-delivery status.
type OrderNotReadyError struct {
	Status string
}

// NewOrderNotReadyError creates an OrderNotReadyError carrying the order's
// actual status.
func NewOrderNotReadyError(status string) OrderNotReadyError {
	return OrderNotReadyError{Status: status}
}

func (e OrderNotReadyError) Error() string {
	return sanitize(fmt.Sprintf("%s: status is %s", ErrOrderNotReady, e.Status))
}

func (e OrderNotReadyError) Unwrap() error {
	return ErrOrderNotReady
}

// MethodMismatchError indicates an assignment call that does not match the
// order's delivery method (carrier call for a messenger order or vice versa).
type MethodMismatchError struct {
	DeliveryMethod string
}

// NewMethodMismatchError creates a MethodMismatchError carrying the order's
// delivery method.
func NewMethodMismatchError(deliveryMethod string) MethodMismatchError {
	return MethodMismatchError{DeliveryMethod: deliveryMethod}
}

func (e MethodMismatchError) Error() string {
	return sanitize(fmt.Sprintf("%s: delivery method is %s", ErrMethodMismatch, e.DeliveryMethod))
}

func (e MethodMismatchError) Unwrap() error {
	return ErrMethodMismatch
}

// OperationNotAllowedError indicates an actor whose role does not grant the
// attempted operation.
type OperationNotAllowedError struct {
	Role      string
	Operation string
}

// NewOperationNotAllowedError creates an OperationNotAllowedError for the
// given role and operation.
func NewOperationNotAllowedError(role, operation string) OperationNotAllowedError {
	return OperationNotAllowedError{Role: role, Operation: operation}
}

func (e OperationNotAllowedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s cannot %s", ErrOperationNotAllowed, e.Role, e.Operation))
}

func (e OperationNotAllowedError) Unwrap() error {
	return ErrOperationNotAllowed
}
