package dog

import (
	"time"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/identifier"
	"github.com/google/uuid"
)

// Dog is a dog registered to exactly one owner.
type Dog struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      *string
	age       *uint8
	breed     *string
	createdAt time.Time
}

// New builds a Dog from a registration request. The owner reference must
// parse as an identifier; whether that owner exists is not checked here.
// Name, age and breed are optional and copied verbatim.
func New(ownerRef string, name *string, age *uint8, breed *string) (*Dog, error) {
	ownerID, err := identifier.Parse(ownerRef)
	if err != nil {
		return nil, domain.NewInvalidOwnerReferenceError(ownerRef, err)
	}

	return &Dog{
		id:        identifier.New(),
		ownerID:   ownerID,
		name:      name,
		age:       age,
		breed:     breed,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Dog from persistence data (no validation).
func Reconstruct(
	id, ownerID uuid.UUID,
	name *string,
	age *uint8,
	breed *string,
	createdAt time.Time,
) *Dog {
	return &Dog{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		age:       age,
		breed:     breed,
		createdAt: createdAt,
	}
}

// --- Getters ---

func (d *Dog) ID() uuid.UUID        { return d.id }
func (d *Dog) OwnerID() uuid.UUID   { return d.ownerID }
func (d *Dog) Name() *string        { return d.name }
func (d *Dog) Age() *uint8          { return d.age }
func (d *Dog) Breed() *string       { return d.breed }
func (d *Dog) CreatedAt() time.Time { return d.createdAt }
