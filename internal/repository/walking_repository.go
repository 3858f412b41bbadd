package repository

import (
	"context"
	"time"

	bookingDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/booking"
	dogDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/dog"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/identifier"
	ownerDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/owner"
	"gorm.io/gorm"
)

// GormWalkingRepository is the GORM-based implementation of booking.Repository.
// It holds no state besides the shared connection pool and is safe for
// concurrent use.
type GormWalkingRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// Option configures a GormWalkingRepository.
type Option func(*GormWalkingRepository)

// WithClock replaces the wall clock used to decide which bookings are active.
func WithClock(now func() time.Time) Option {
	return func(r *GormWalkingRepository) { r.now = now }
}

// NewGormWalkingRepository creates a new GormWalkingRepository.
func NewGormWalkingRepository(db *gorm.DB, opts ...Option) *GormWalkingRepository {
	r := &GormWalkingRepository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateOwner persists a new owner.
func (r *GormWalkingRepository) CreateOwner(ctx context.Context, o *ownerDomain.Owner) (bookingDomain.Receipt, error) {
	model := toOwnerModel(o)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return bookingDomain.Receipt{}, classifyStorageError("save owner", "owner", err)
	}
	return bookingDomain.Receipt{InsertedID: model.ID}, nil
}

// CreateDog persists a new dog.
func (r *GormWalkingRepository) CreateDog(ctx context.Context, d *dogDomain.Dog) (bookingDomain.Receipt, error) {
	model := toDogModel(d)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return bookingDomain.Receipt{}, classifyStorageError("save dog", "dog", err)
	}
	return bookingDomain.Receipt{InsertedID: model.ID}, nil
}

// CreateBooking persists a new booking.
func (r *GormWalkingRepository) CreateBooking(ctx context.Context, b *bookingDomain.Booking) (bookingDomain.Receipt, error) {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return bookingDomain.Receipt{}, classifyStorageError("save booking", "booking", err)
	}
	return bookingDomain.Receipt{InsertedID: model.ID}, nil
}

// CancelBooking flips cancelled to true on exactly the booking with the given
// identifier. UpdateColumn keeps updated_at and every other column untouched.
// A booking that is already cancelled is matched but not modified.
func (r *GormWalkingRepository) CancelBooking(ctx context.Context, id string) (bookingDomain.UpdateReceipt, error) {
	bookingID, err := identifier.Parse(id)
	if err != nil {
		return bookingDomain.UpdateReceipt{}, err
	}

	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND cancelled = ?", bookingID, false).
		UpdateColumn("cancelled", true)
	if result.Error != nil {
		return bookingDomain.UpdateReceipt{}, classifyStorageError("cancel booking", "booking", result.Error)
	}

	receipt := bookingDomain.UpdateReceipt{
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}
	if receipt.ModifiedCount > 0 {
		return receipt, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ?", bookingID).
		Count(&receipt.MatchedCount).Error; err != nil {
		return bookingDomain.UpdateReceipt{}, classifyStorageError("cancel booking", "booking", err)
	}
	return receipt, nil
}
