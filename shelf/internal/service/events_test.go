package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/myshelf/pkg/circuit_breaker"
	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEventPublisher_PublishRental(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	ev := kafka.EventRental{
		Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		EventType: kafka.EventBorrowed,
		UserName:  "reader",
		RentalID:  "r1",
		BookID:    "A",
		DueDate:   "2024-03-15",
	}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got kafka.EventRental
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if !got.Timestamp.Equal(ev.Timestamp) {
			return errors.Errorf("unexpected timestamp %s", got.Timestamp)
		}
		got.Timestamp = ev.Timestamp
		if got != ev {
			return errors.Errorf("unexpected event %+v", got)
		}
		return nil
	})

	p := NewPublisher(producer, zap.NewNop())
	require.NoError(t, p.PublishRental(context.Background(), ev))
}

func TestEventPublisher_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	p := NewPublisher(producer, zap.NewNop())
	p.cb = circuit_breaker.New(2, time.Minute, 0.5, 1)

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	require.ErrorIs(t, p.PublishRental(context.Background(), kafka.EventRental{}), sarama.ErrOutOfBrokers)

	// the breaker is open: the producer is not called again
	require.ErrorIs(t, p.PublishRental(context.Background(), kafka.EventRental{}), circuit_breaker.ErrOpenCB)
}

func TestEventPublisher_Cancelled(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, producer.Close()) }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPublisher(producer, zap.NewNop())
	require.ErrorIs(t, p.PublishRental(ctx, kafka.EventRental{}), context.Canceled)
}
