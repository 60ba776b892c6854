// Package guard implements the constructor-guard pattern used by domain
// objects to detect zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been created through its
// designated constructor. Embedding a guard and checking it in Validate
// prevents accidental use of zero-value domain objects.
//
// Example:
//
//	type Payment struct {
//	    amount int64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPayment(amount int64) Payment {
//	    return Payment{amount: amount, guard: guard.NewConstructorGuard()}
//	}
//
//	func (p Payment) Validate() error {
//	    return p.guard.Validate(ErrPaymentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owning object as
// properly constructed. Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero-value guards it
// returns validationError, or ErrDefaultConstructorGuard when nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
