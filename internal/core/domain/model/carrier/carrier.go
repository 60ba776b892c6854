// Package carrier defines the external shipping company reference used by
// the delivery assigner for non-local shipments.
package carrier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarrierIsNotConstructed is returned when using an improperly
	// initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier")
)

// Carrier is a third-party shipping company. Inactive carriers remain in the
// store for the audit trail of past assignments but cannot receive new ones.
type Carrier struct {
	id     kernel.UUID
	name   string
	active bool

	guard guard.ConstructorGuard
}

// NewCarrier creates an active carrier.
func NewCarrier(id kernel.UUID, name string) (*Carrier, error) {
	return RestoreCarrier(id, name, true)
}

// RestoreCarrier reconstructs a carrier from persistence.
func RestoreCarrier(id kernel.UUID, name string, active bool) (*Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Carrier{
		id:     id,
		name:   name,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's display name.
func (c *Carrier) Name() string {
	return c.name
}

// IsActive reports whether the carrier may receive new assignments.
func (c *Carrier) IsActive() bool {
	return c.active
}

// Deactivate removes the carrier from the assignable pool.
func (c *Carrier) Deactivate() {
	c.active = false
}

// Activate returns the carrier to the assignable pool.
func (c *Carrier) Activate() {
	c.active = true
}
