package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/IBM/sarama"
)

// KafkaConsumerConfig contains configuration for the notification consumer
type KafkaConsumerConfig struct {
	Brokers       []string
	Topic         string
	GroupID       string
	NumWorkers    int
	InitialOffset int64
}

// DefaultKafkaConsumerConfig returns a default consumer configuration
func DefaultKafkaConsumerConfig() *KafkaConsumerConfig {
	return &KafkaConsumerConfig{
		Brokers:       []string{"localhost:9092"},
		Topic:         "booking-notifications",
		GroupID:       "cineshow-notification-workers",
		NumWorkers:    3,
		InitialOffset: sarama.OffsetNewest,
	}
}

// Handler processes one delivered booking notification
type Handler func(ctx context.Context, notification *BookingNotification) error

// KafkaNotificationConsumer consumes booking notifications with a worker pool
type KafkaNotificationConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *KafkaConsumerConfig
	handler       Handler

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewKafkaNotificationConsumer creates a consumer group for booking notifications
func NewKafkaNotificationConsumer(config *KafkaConsumerConfig, handler Handler) (*KafkaNotificationConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}
	saramaConfig.Consumer.Offsets.Initial = config.InitialOffset
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	return &KafkaNotificationConsumer{
		consumerGroup: group,
		config:        config,
		handler:       handler,
	}, nil
}

// Start begins consuming until the context is cancelled or Stop is called
func (c *KafkaNotificationConsumer) Start(ctx context.Context) error {
	consumeCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	// Surface consumer-group errors
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for err := range c.consumerGroup.Errors() {
			log.Printf("Kafka consumer error: %v", err)
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			// Consume returns on every rebalance; loop until cancelled
			if err := c.consumerGroup.Consume(consumeCtx, []string{c.config.Topic}, c); err != nil {
				log.Printf("Kafka consume failed: %v", err)
			}
			if consumeCtx.Err() != nil {
				return
			}
		}
	}()

	log.Printf("📥 Notification consumer started - Topic: %s, Group: %s, Workers: %d",
		c.config.Topic, c.config.GroupID, c.config.NumWorkers)
	return nil
}

// Stop shuts down the consumer group and waits for in-flight work
func (c *KafkaNotificationConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	err := c.consumerGroup.Close()
	c.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

// Setup implements sarama.ConsumerGroupHandler
func (c *KafkaNotificationConsumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup implements sarama.ConsumerGroupHandler
func (c *KafkaNotificationConsumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim fans messages out to a bounded worker pool
func (c *KafkaNotificationConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	var wg sync.WaitGroup
	jobs := make(chan *sarama.ConsumerMessage)

	for i := 0; i < c.config.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for message := range jobs {
				c.processMessage(session, message)
			}
		}()
	}

	for message := range claim.Messages() {
		select {
		case jobs <- message:
		case <-session.Context().Done():
			close(jobs)
			wg.Wait()
			return nil
		}
	}

	close(jobs)
	wg.Wait()
	return nil
}

func (c *KafkaNotificationConsumer) processMessage(session sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	notification, err := FromJSON(message.Value)
	if err != nil {
		// Poison message: log and move on, re-delivery cannot fix it
		log.Printf("Failed to decode notification at %s/%d/%d: %v",
			message.Topic, message.Partition, message.Offset, err)
		session.MarkMessage(message, "")
		return
	}

	if err := c.handler(session.Context(), notification); err != nil {
		log.Printf("Failed to handle notification %s: %v", notification.ID, err)
		// Mark anyway: this flow has no dead-letter topic and blocking the
		// partition on one bad notification is worse than dropping it.
	}

	session.MarkMessage(message, "")
}
