package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type notify func(ctx context.Context, ev kafka.EventNotification) error

// Consumer feeds notification events from kafka into user feeds.
type Consumer struct {
	notifyHandler notify
	log           *zap.Logger
	ready         chan bool
}

func NewConsumer(notifyHandler notify, log *zap.Logger) *Consumer {
	return &Consumer{
		notifyHandler: notifyHandler,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle drops malformed events; a notification is not worth a redelivery loop.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	var ev kafka.EventNotification
	if err := json.Unmarshal(message.Value, &ev); err != nil {
		consumer.log.Error("decode notification", zap.Error(err), zap.ByteString("value", message.Value))
		return
	}
	if ev.Title == "" && ev.Message == "" {
		consumer.log.Warn("empty notification skipped", zap.Int64("offset", message.Offset))
		return
	}
	if err := consumer.notifyHandler(ctx, ev); err != nil {
		consumer.log.Error("consumer.notifyHandler", zap.Error(err))
		return
	}
	consumer.log.Debug("message claimed",
		zap.String("topic", message.Topic),
		zap.Time("timestamp", message.Timestamp),
		zap.String("value", string(message.Value)))
}
