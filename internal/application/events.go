package application

import (
	"time"

	"github.com/google/uuid"
)

// Topics and event types published by the walking service.
const (
	TopicWalkingEvents = "walking.events"

	EventBookingCreated   = "walking.booking.created"
	EventBookingCancelled = "walking.booking.cancelled"
	EventDogRegistered    = "walking.dog.registered"

	eventSource = "service-walking"
)

// BookingCreatedEvent is published after a booking is stored.
type BookingCreatedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	StartTime  time.Time `json:"start_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published when a cancellation changes a booking.
type BookingCancelledEvent struct {
	BookingID  string    `json:"booking_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DogRegisteredEvent is published after a dog is stored.
type DogRegisteredEvent struct {
	DogID      uuid.UUID `json:"dog_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
