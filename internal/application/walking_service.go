package application

import (
	"context"
	"errors"
	"time"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	bookingDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/booking"
	dogDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/dog"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain/identifier"
	ownerDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/owner"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/metrics"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/platform/kafka"
	"go.uber.org/zap"
)

// EventPublisher publishes CloudEvents. *kafka.Producer implements it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, ce kafka.CloudEvent) error
}

// WalkingService implements the owner, dog and booking use cases.
type WalkingService struct {
	repo      bookingDomain.Repository
	publisher EventPublisher
	metrics   *metrics.WalkingMetrics
	logger    *zap.Logger
}

// NewWalkingService creates a new WalkingService.
func NewWalkingService(
	repo bookingDomain.Repository,
	publisher EventPublisher,
	m *metrics.WalkingMetrics,
	logger *zap.Logger,
) *WalkingService {
	return &WalkingService{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// CreateOwner stores a new owner.
func (s *WalkingService) CreateOwner(ctx context.Context, req CreateOwnerRequest) (*ReceiptDTO, error) {
	o := ownerDomain.New(req.Name, req.Email, req.Phone, req.Address)

	receipt, err := s.repo.CreateOwner(ctx, o)
	if err != nil {
		s.logger.Error("failed to create owner", zap.Error(err))
		return nil, err
	}

	s.metrics.OwnerCreated()
	s.logger.Info("owner created", zap.String("owner_id", receipt.InsertedID.String()))
	return toReceiptDTO(receipt), nil
}

// ImportOwner stores an owner registered in another service under that
// service's identifier. Importing the same owner again succeeds without
// writing, so replayed events are harmless.
func (s *WalkingService) ImportOwner(ctx context.Context, ownerID string, req CreateOwnerRequest) (*ReceiptDTO, error) {
	id, err := identifier.Parse(ownerID)
	if err != nil {
		return nil, err
	}
	o := ownerDomain.NewWithID(id, req.Name, req.Email, req.Phone, req.Address)

	receipt, err := s.repo.CreateOwner(ctx, o)
	if errors.Is(err, domain.ErrDuplicateKey) {
		s.logger.Info("owner already imported", zap.String("owner_id", id.String()))
		return &ReceiptDTO{Success: true, InsertedID: id}, nil
	}
	if err != nil {
		s.logger.Error("failed to import owner", zap.String("owner_id", id.String()), zap.Error(err))
		return nil, err
	}

	s.metrics.OwnerCreated()
	s.logger.Info("owner imported", zap.String("owner_id", receipt.InsertedID.String()))
	return toReceiptDTO(receipt), nil
}

// CreateDog registers a dog against the owner named in the request.
func (s *WalkingService) CreateDog(ctx context.Context, req CreateDogRequest) (*ReceiptDTO, error) {
	d, err := dogDomain.New(req.Owner, req.Name, req.Age, req.Breed)
	if err != nil {
		return nil, err
	}

	receipt, err := s.repo.CreateDog(ctx, d)
	if err != nil {
		s.logger.Error("failed to create dog", zap.Error(err))
		return nil, err
	}

	s.metrics.DogCreated()
	s.logger.Info("dog registered",
		zap.String("dog_id", receipt.InsertedID.String()),
		zap.String("owner_id", d.OwnerID().String()),
	)
	s.publishEvent(ctx, EventDogRegistered, d.ID().String(), DogRegisteredEvent{
		DogID:      d.ID(),
		OwnerID:    d.OwnerID(),
		OccurredAt: time.Now().UTC(),
	})
	return toReceiptDTO(receipt), nil
}

// CreateBooking books a walk for the owner named in the request.
func (s *WalkingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*ReceiptDTO, error) {
	bk, err := bookingDomain.New(req.Owner, req.StartTime, req.DurationMinutes, req.Notes)
	if err != nil {
		return nil, err
	}

	receipt, err := s.repo.CreateBooking(ctx, bk)
	if err != nil {
		s.logger.Error("failed to create booking", zap.Error(err))
		return nil, err
	}

	s.metrics.BookingCreated()
	s.logger.Info("booking created",
		zap.String("booking_id", receipt.InsertedID.String()),
		zap.String("owner_id", bk.OwnerID().String()),
		zap.Time("start_time", bk.StartTime()),
	)
	s.publishEvent(ctx, EventBookingCreated, bk.ID().String(), BookingCreatedEvent{
		BookingID:  bk.ID(),
		OwnerID:    bk.OwnerID(),
		StartTime:  bk.StartTime(),
		OccurredAt: time.Now().UTC(),
	})
	return toReceiptDTO(receipt), nil
}

// CancelBooking marks the booking cancelled. An unknown identifier is not an
// error; the receipt then reports zero matches.
func (s *WalkingService) CancelBooking(ctx context.Context, id string) (*UpdateReceiptDTO, error) {
	receipt, err := s.repo.CancelBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if receipt.ModifiedCount > 0 {
		s.metrics.BookingCancelled()
		s.logger.Info("booking cancelled", zap.String("booking_id", id))
		s.publishEvent(ctx, EventBookingCancelled, id, BookingCancelledEvent{
			BookingID:  id,
			OccurredAt: time.Now().UTC(),
		})
	}

	return &UpdateReceiptDTO{
		MatchedCount:  receipt.MatchedCount,
		ModifiedCount: receipt.ModifiedCount,
	}, nil
}

// ListActiveBookings returns every active booking with its owner and dogs.
func (s *WalkingService) ListActiveBookings(ctx context.Context) ([]FullBookingDTO, error) {
	start := time.Now()
	bookings, err := s.repo.ListActiveBookings(ctx)
	if err != nil {
		s.logger.Error("failed to list active bookings", zap.Error(err))
		return nil, err
	}
	s.metrics.ActiveBookingsQueried(len(bookings), time.Since(start))

	dtos := make([]FullBookingDTO, len(bookings))
	for i, fb := range bookings {
		dtos[i] = toFullBookingDTO(fb)
	}
	return dtos, nil
}

func (s *WalkingService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, TopicWalkingEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", TopicWalkingEvents),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
