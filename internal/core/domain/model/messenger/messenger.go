// Package messenger defines the in-house delivery agent aggregate. A
// messenger is a role-scoped actor who carries orders, collects cash or
// transfers on delivery, and owns an append-only cash ledger reflecting the
// money physically in their possession.
package messenger

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a messenger without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMessengerIsNotConstructed is returned when using an improperly
	// initialized Messenger.
	ErrMessengerIsNotConstructed = errors.New("Messenger must be created via NewMessenger or RestoreMessenger")
)

// Messenger is an in-house delivery agent, distinct from an external
// carrier. Zone is an optional affinity used as a soft filter when listing
// assignment candidates; it is never enforced server-side.
type Messenger struct {
	id     kernel.UUID
	name   string
	zone   string
	active bool

	guard guard.ConstructorGuard
}

// NewMessenger creates an active messenger. Zone may be empty.
func NewMessenger(id kernel.UUID, name, zone string) (*Messenger, error) {
	return RestoreMessenger(id, name, zone, true)
}

// RestoreMessenger reconstructs a messenger from persistence.
func RestoreMessenger(id kernel.UUID, name, zone string, active bool) (*Messenger, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Messenger{
		id:     id,
		name:   name,
		zone:   zone,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the messenger was created through a constructor.
func (m *Messenger) Validate() error {
	if m == nil {
		return ErrMessengerIsNotConstructed
	}
	return m.guard.Validate(ErrMessengerIsNotConstructed)
}

// ID returns the messenger's unique identifier.
func (m *Messenger) ID() kernel.UUID {
	return m.id
}

// Name returns the messenger's display name.
func (m *Messenger) Name() string {
	return m.name
}

// Zone returns the optional zone affinity, or "".
func (m *Messenger) Zone() string {
	return m.zone
}

// IsActive reports whether the messenger may receive new assignments.
func (m *Messenger) IsActive() bool {
	return m.active
}

// Deactivate removes the messenger from the assignable pool.
func (m *Messenger) Deactivate() {
	m.active = false
}

// Activate returns the messenger to the assignable pool.
func (m *Messenger) Activate() {
	m.active = true
}
