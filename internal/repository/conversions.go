package repository

import (
	bookingDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/booking"
	dogDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/dog"
	ownerDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/owner"
)

func toOwnerModel(o *ownerDomain.Owner) *OwnerModel {
	return &OwnerModel{
		ID:        o.ID(),
		Name:      o.Name(),
		Email:     o.Email(),
		Phone:     o.Phone(),
		Address:   o.Address(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toOwnerDomain(m *OwnerModel) *ownerDomain.Owner {
	return ownerDomain.Reconstruct(
		m.ID,
		m.Name, m.Email, m.Phone, m.Address,
		m.CreatedAt, m.UpdatedAt,
	)
}

func toDogModel(d *dogDomain.Dog) *DogModel {
	return &DogModel{
		ID:        d.ID(),
		OwnerID:   d.OwnerID(),
		Name:      d.Name(),
		Age:       d.Age(),
		Breed:     d.Breed(),
		CreatedAt: d.CreatedAt(),
	}
}

func toDogDomain(m *DogModel) *dogDomain.Dog {
	return dogDomain.Reconstruct(m.ID, m.OwnerID, m.Name, m.Age, m.Breed, m.CreatedAt)
}

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:              b.ID(),
		OwnerID:         b.OwnerID(),
		StartTime:       b.StartTime(),
		DurationMinutes: b.DurationMinutes(),
		Notes:           b.Notes(),
		Cancelled:       b.Cancelled(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func toBookingDomain(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(
		m.ID, m.OwnerID,
		m.StartTime.UTC(),
		m.DurationMinutes,
		m.Notes,
		m.Cancelled,
		m.CreatedAt, m.UpdatedAt,
	)
}
