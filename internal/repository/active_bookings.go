package repository

import (
	"context"

	bookingDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/booking"
	dogDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/dog"
	ownerDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/owner"
	"github.com/google/uuid"
)

// ListActiveBookings joins uncancelled bookings that start at or after the
// current time with their owner and that owner's dogs.
//
// The clock is read once and the same instant filters every booking. A
// booking whose owner no longer resolves is dropped from the result rather
// than failing the query. An owner with no dogs yields an empty dog list.
// Results are ordered by insertion (created_at, id); dogs likewise. Any
// storage error aborts the whole query.
func (r *GormWalkingRepository) ListActiveBookings(ctx context.Context) ([]*bookingDomain.FullBooking, error) {
	now := r.now().UTC()
	db := r.db.WithContext(ctx)

	var bookings []BookingModel
	if err := db.
		Where("cancelled = ? AND start_time >= ?", false, now).
		Order("created_at ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, classifyStorageError("list active bookings", "booking", err)
	}
	if len(bookings) == 0 {
		return []*bookingDomain.FullBooking{}, nil
	}

	ownerIDs := distinctOwnerIDs(bookings)
	var owners []OwnerModel
	if err := db.Where("id IN ?", ownerIDs).Find(&owners).Error; err != nil {
		return nil, classifyStorageError("resolve booking owners", "owner", err)
	}

	ownersByID := make(map[uuid.UUID]*ownerDomain.Owner, len(owners))
	resolvedIDs := make([]uuid.UUID, 0, len(owners))
	for i := range owners {
		ownersByID[owners[i].ID] = toOwnerDomain(&owners[i])
		resolvedIDs = append(resolvedIDs, owners[i].ID)
	}

	dogsByOwner := make(map[uuid.UUID][]*dogDomain.Dog, len(resolvedIDs))
	if len(resolvedIDs) > 0 {
		var dogs []DogModel
		if err := db.
			Where("owner_id IN ?", resolvedIDs).
			Order("created_at ASC, id ASC").
			Find(&dogs).Error; err != nil {
			return nil, classifyStorageError("collect owner dogs", "dog", err)
		}
		for i := range dogs {
			dogsByOwner[dogs[i].OwnerID] = append(dogsByOwner[dogs[i].OwnerID], toDogDomain(&dogs[i]))
		}
	}

	result := make([]*bookingDomain.FullBooking, 0, len(bookings))
	for i := range bookings {
		o, ok := ownersByID[bookings[i].OwnerID]
		if !ok {
			continue
		}
		dogs := dogsByOwner[o.ID()]
		if dogs == nil {
			dogs = []*dogDomain.Dog{}
		}
		result = append(result, &bookingDomain.FullBooking{
			Booking: toBookingDomain(&bookings[i]),
			Owner:   o,
			Dogs:    dogs,
		})
	}
	return result, nil
}

func distinctOwnerIDs(bookings []BookingModel) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(bookings))
	ids := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.OwnerID]; ok {
			continue
		}
		seen[b.OwnerID] = struct{}{}
		ids = append(ids, b.OwnerID)
	}
	return ids
}
