package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/myshelf/pkg/circuit_breaker"
	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Publisher sends rental events to the rest of the family.
type Publisher interface {
	PublishRental(ctx context.Context, ev kafka.EventRental) error
}

type nopPublisher struct{}

func (nopPublisher) PublishRental(context.Context, kafka.EventRental) error { return nil }

type eventPublisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

// NewPublisher wraps the producer in a circuit breaker so a broker outage
// turns into fast failures instead of stalled requests.
func NewPublisher(producer sarama.SyncProducer, log *zap.Logger) *eventPublisher {
	return &eventPublisher{
		producer: producer,
		cb:       circuit_breaker.New(100, 10*time.Second, 0.2, 2),
		log:      log.Named("events"),
	}
}

func (p *eventPublisher) PublishRental(ctx context.Context, ev kafka.EventRental) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.RentalTopic,
		Key:   sarama.StringEncoder(ev.UserName),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return err
		}
		p.log.Debug("rental event sent",
			zap.String("event", string(ev.EventType)),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}
