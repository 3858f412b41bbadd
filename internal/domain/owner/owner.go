package owner

import (
	"time"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/identifier"
	"github.com/google/uuid"
)

// Owner is a dog owner who books walks.
type Owner struct {
	id        uuid.UUID
	name      string
	email     string
	phone     string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

// New creates an Owner under a freshly minted identifier. Profile fields are
// copied as given.
func New(name, email, phone, address string) *Owner {
	return NewWithID(identifier.New(), name, email, phone, address)
}

// NewWithID creates an Owner under an identifier assigned elsewhere, such as
// the identity service.
func NewWithID(id uuid.UUID, name, email, phone, address string) *Owner {
	now := time.Now().UTC()
	return &Owner{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}
}

// Reconstruct rebuilds an Owner from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	name, email, phone, address string,
	createdAt, updatedAt time.Time,
) *Owner {
	return &Owner{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (o *Owner) ID() uuid.UUID        { return o.id }
func (o *Owner) Name() string         { return o.name }
func (o *Owner) Email() string        { return o.email }
func (o *Owner) Phone() string        { return o.phone }
func (o *Owner) Address() string      { return o.address }
func (o *Owner) CreatedAt() time.Time { return o.createdAt }
func (o *Owner) UpdatedAt() time.Time { return o.updatedAt }
