package notifications

import (
	"context"
	"fmt"
	"log"

	"cineshow/internal/shared/config"
)

// Service wires the Kafka producer and the consumer worker pool together.
// The consumer side only logs deliveries for now; there is no user store to
// resolve an email address from, so dispatch stays a structured audit trail.
type Service struct {
	producer Producer
	consumer *KafkaNotificationConsumer
}

// NewService builds the notification service from the application config
func NewService(cfg config.KafkaConfig) (*Service, error) {
	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Brokers
	producerConfig.Topic = cfg.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultKafkaConsumerConfig()
	consumerConfig.Brokers = cfg.Brokers
	consumerConfig.Topic = cfg.NotificationTopic
	consumerConfig.GroupID = cfg.ConsumerGroupID
	consumerConfig.NumWorkers = cfg.NumWorkers

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, handleNotification)
	if err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	return &Service{
		producer: producer,
		consumer: consumer,
	}, nil
}

// Producer exposes the publishing side for the booking flow
func (s *Service) Producer() Producer {
	return s.producer
}

// Start begins consuming notifications
func (s *Service) Start(ctx context.Context) error {
	return s.consumer.Start(ctx)
}

// Stop shuts down consumer and producer
func (s *Service) Stop() error {
	var firstErr error
	if err := s.consumer.Stop(); err != nil {
		firstErr = err
	}
	if err := s.producer.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// HealthCheck verifies the publishing side is alive
func (s *Service) HealthCheck(ctx context.Context) error {
	return s.producer.HealthCheck(ctx)
}

func handleNotification(ctx context.Context, n *BookingNotification) error {
	switch n.Type {
	case NotificationTypeBookingConfirmed:
		log.Printf("✉️  Booking confirmed for %s (%s): booking %s, show %s, %d seat(s), total %.2f",
			n.UserName, n.UserID, n.BookingID, n.ShowID, len(n.Seats), n.TotalPrice)
	case NotificationTypeBookingCancelled:
		log.Printf("✉️  Booking cancelled for %s (%s): booking %s, show %s",
			n.UserName, n.UserID, n.BookingID, n.ShowID)
	default:
		return fmt.Errorf("unknown notification type %q", n.Type)
	}
	return nil
}
