package booking

import (
	"context"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/dog"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/owner"
	"github.com/google/uuid"
)

// Receipt confirms a single insert.
type Receipt struct {
	InsertedID uuid.UUID
}

// UpdateReceipt reports the outcome of a targeted update. MatchedCount is
// zero when no record carries the identifier; that is not an error.
type UpdateReceipt struct {
	MatchedCount  int64
	ModifiedCount int64
}

// Repository owns the owners, dogs and bookings collections.
type Repository interface {
	// CreateOwner inserts a new owner.
	CreateOwner(ctx context.Context, o *owner.Owner) (Receipt, error)

	// CreateDog inserts a new dog.
	CreateDog(ctx context.Context, d *dog.Dog) (Receipt, error)

	// CreateBooking inserts a new booking.
	CreateBooking(ctx context.Context, b *Booking) (Receipt, error)

	// CancelBooking sets cancelled=true on the booking with the given raw identifier.
	CancelBooking(ctx context.Context, id string) (UpdateReceipt, error)

	// ListActiveBookings returns every uncancelled, not yet started booking
	// joined with its owner and the owner's dogs.
	ListActiveBookings(ctx context.Context) ([]*FullBooking, error)
}
