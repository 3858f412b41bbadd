package events

import (
	"context"
	"errors"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/application"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/platform/kafka"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Inbound topic and event type from the identity service.
const (
	TopicIdentityEvents     = "identity.events"
	IdentityOwnerRegistered = "identity.owner.registered"
)

// OwnerRegisteredEvent is the payload of IdentityOwnerRegistered.
type OwnerRegisteredEvent struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OwnerImporter is the slice of WalkingService the consumer needs.
type OwnerImporter interface {
	ImportOwner(ctx context.Context, ownerID string, req application.CreateOwnerRequest) (*application.ReceiptDTO, error)
}

// OwnerEventConsumer creates owners for owners registered in the identity service.
type OwnerEventConsumer struct {
	consumer *kafka.Consumer
	service  OwnerImporter
	logger   *zap.Logger
}

// NewOwnerEventConsumer creates a new OwnerEventConsumer.
func NewOwnerEventConsumer(
	brokers []string,
	groupID string,
	service OwnerImporter,
	logger *zap.Logger,
) *OwnerEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, TopicIdentityEvents, logger)
	return &OwnerEventConsumer{
		consumer: consumer,
		service:  service,
		logger:   logger,
	}
}

// Start begins consuming identity events. This blocks until the context is cancelled.
func (c *OwnerEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *OwnerEventConsumer) Close() error {
	return c.consumer.Close()
}

func (c *OwnerEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from identity topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case IdentityOwnerRegistered:
		return c.handleOwnerRegistered(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled identity event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *OwnerEventConsumer) handleOwnerRegistered(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt OwnerRegisteredEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse OwnerRegisteredEvent data", zap.Error(err))
		return nil // Don't retry malformed data
	}

	receipt, err := c.service.ImportOwner(ctx, evt.OwnerID, application.CreateOwnerRequest{
		Name:    evt.Name,
		Email:   evt.Email,
		Phone:   evt.Phone,
		Address: evt.Address,
	})
	if errors.Is(err, domain.ErrInvalidIdentifier) {
		c.logger.Error("identity event carries an invalid owner id",
			zap.String("event_id", cloudEvent.ID),
			zap.String("owner_id", evt.OwnerID),
		)
		return nil // Don't retry malformed data
	}
	if err != nil {
		c.logger.Error("failed to create owner from identity event",
			zap.String("event_id", cloudEvent.ID),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("owner created from identity event",
		zap.String("event_id", cloudEvent.ID),
		zap.String("owner_id", receipt.InsertedID.String()),
	)
	return nil
}
