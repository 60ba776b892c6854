package actor

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role identifies the workflow responsibility of an actor. Every mutating
// operation receives an actor with a role claim; the engine enforces
// role-appropriate operations but does not issue or validate credentials.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RolePacker scans barcodes in the warehouse and drives the packing
	// checklist.
	RolePacker

	// RoleDispatcher assigns carriers and messengers and manages order
	// transitions.
	RoleDispatcher

	// RoleMessenger delivers orders and collects cash or transfer payments.
	RoleMessenger

	// RoleWallet is the accounts-receivable role that reconciles collected
	// payments.
	RoleWallet

	// RoleAdmin may perform any operation.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RolePacker:     "packer",
		RoleDispatcher: "dispatcher",
		RoleMessenger:  "messenger",
		RoleWallet:     "wallet",
		RoleAdmin:      "admin",
	}
}

// RoleFromString parses a role claim received at the boundary.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the role is one of the defined role claims.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the role claim string.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
