package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

const (
	RentalTopic       = "shelf.rentals"
	NotificationTopic = "shelf.notifications"

	ShelfConsumerGroup = "shelf"
)

type RentalEventType string

const (
	EventBorrowed RentalEventType = "borrowed"
	EventRenewed  RentalEventType = "renewed"
	EventReturned RentalEventType = "returned"
)

// EventRental is published on RentalTopic for every ledger mutation.
type EventRental struct {
	Timestamp    time.Time       `json:"timestamp"`
	EventType    RentalEventType `json:"event_type"`
	UserName     string          `json:"username"`
	RentalID     string          `json:"rental_uid"`
	BookID       string          `json:"book_uid"`
	DueDate      string          `json:"due_date"`
	RenewalCount int             `json:"renewal_count"`
}

// EventNotification is consumed from NotificationTopic.
// An empty UserName means every session.
type EventNotification struct {
	UserName string `json:"username,omitempty"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// ConsumeRetryBackoff is the pause before rejoining after a failed Consume.
var ConsumeRetryBackoff = time.Second

// Consume blocks until ctx is cancelled, rejoining the group after every rebalance.
func Consume(ctx context.Context, log *zap.Logger, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			log.Error("kafka consume", zap.Error(err))
			select {
			case <-ctx.Done():
			case <-time.After(ConsumeRetryBackoff):
			}
		}
		if ctx.Err() != nil {
			return group.Close()
		}
	}
}
