package booking

import (
	"time"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/dog"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/identifier"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/owner"
	"github.com/google/uuid"
)

// Booking is a scheduled walk for one owner's dogs.
type Booking struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	startTime       time.Time
	durationMinutes int
	notes           string
	cancelled       bool
	createdAt       time.Time
	updatedAt       time.Time
}

// New creates an uncancelled Booking. The owner reference goes through the
// identifier codec the same way a dog's does.
func New(ownerRef string, startTime time.Time, durationMinutes int, notes string) (*Booking, error) {
	ownerID, err := identifier.Parse(ownerRef)
	if err != nil {
		return nil, domain.NewInvalidOwnerReferenceError(ownerRef, err)
	}
	if startTime.IsZero() {
		return nil, domain.NewValidationError("start time is required")
	}

	now := time.Now().UTC()
	return &Booking{
		id:              identifier.New(),
		ownerID:         ownerID,
		startTime:       startTime.UTC(),
		durationMinutes: durationMinutes,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id, ownerID uuid.UUID,
	startTime time.Time,
	durationMinutes int,
	notes string,
	cancelled bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		ownerID:         ownerID,
		startTime:       startTime,
		durationMinutes: durationMinutes,
		notes:           notes,
		cancelled:       cancelled,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// --- Getters ---

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Booking) StartTime() time.Time { return b.startTime }
func (b *Booking) DurationMinutes() int { return b.durationMinutes }
func (b *Booking) Notes() string        { return b.notes }
func (b *Booking) Cancelled() bool      { return b.cancelled }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// IsActiveAt reports whether the booking is uncancelled and starts at or after now.
func (b *Booking) IsActiveAt(now time.Time) bool {
	return !b.cancelled && !b.startTime.Before(now)
}

// FullBooking is the read-time view of a booking joined with its owner and
// the owner's dogs. It is never stored.
type FullBooking struct {
	Booking *Booking
	Owner   *owner.Owner
	Dogs    []*dog.Dog
}
