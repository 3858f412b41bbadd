package application

import (
	"time"

	bookingDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/booking"
	dogDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/dog"
	ownerDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/owner"
	"github.com/google/uuid"
)

// CreateOwnerRequest is the request DTO for creating an owner.
type CreateOwnerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateDogRequest is the request DTO for registering a dog. Owner is the
// owner's identifier in string form.
type CreateDogRequest struct {
	Owner string  `json:"owner" binding:"required"`
	Name  *string `json:"name"`
	Age   *uint8  `json:"age"`
	Breed *string `json:"breed"`
}

// CreateBookingRequest is the request DTO for booking a walk.
type CreateBookingRequest struct {
	Owner           string    `json:"owner" binding:"required"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}

// ReceiptDTO confirms an insert.
type ReceiptDTO struct {
	Success    bool      `json:"success"`
	InsertedID uuid.UUID `json:"inserted_id"`
}

// UpdateReceiptDTO reports how many bookings a cancellation matched and changed.
type UpdateReceiptDTO struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// OwnerDTO is the API representation of an owner.
type OwnerDTO struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
}

// DogDTO is the API representation of a dog.
type DogDTO struct {
	ID    uuid.UUID `json:"id"`
	Owner uuid.UUID `json:"owner"`
	Name  *string   `json:"name,omitempty"`
	Age   *uint8    `json:"age,omitempty"`
	Breed *string   `json:"breed,omitempty"`
}

// FullBookingDTO is a booking with its owner and the owner's dogs.
type FullBookingDTO struct {
	ID              uuid.UUID `json:"id"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	Cancelled       bool      `json:"cancelled"`
	CreatedAt       time.Time `json:"created_at"`
	Owner           OwnerDTO  `json:"owner"`
	Dogs            []DogDTO  `json:"dogs"`
}

func toReceiptDTO(r bookingDomain.Receipt) *ReceiptDTO {
	return &ReceiptDTO{Success: true, InsertedID: r.InsertedID}
}

func toOwnerDTO(o *ownerDomain.Owner) OwnerDTO {
	return OwnerDTO{
		ID:      o.ID(),
		Name:    o.Name(),
		Email:   o.Email(),
		Phone:   o.Phone(),
		Address: o.Address(),
	}
}

func toDogDTO(d *dogDomain.Dog) DogDTO {
	return DogDTO{
		ID:    d.ID(),
		Owner: d.OwnerID(),
		Name:  d.Name(),
		Age:   d.Age(),
		Breed: d.Breed(),
	}
}

func toFullBookingDTO(fb *bookingDomain.FullBooking) FullBookingDTO {
	dogs := make([]DogDTO, len(fb.Dogs))
	for i, d := range fb.Dogs {
		dogs[i] = toDogDTO(d)
	}
	return FullBookingDTO{
		ID:              fb.Booking.ID(),
		StartTime:       fb.Booking.StartTime(),
		DurationMinutes: fb.Booking.DurationMinutes(),
		Notes:           fb.Booking.Notes(),
		Cancelled:       fb.Booking.Cancelled(),
		CreatedAt:       fb.Booking.CreatedAt(),
		Owner:           toOwnerDTO(fb.Owner),
		Dogs:            dogs,
	}
}
