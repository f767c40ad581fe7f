package handler

import (
	"context"
	"sync"
	"testing"

	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx context.Context

	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()
	var got []kafka.EventNotification
	consumer := NewConsumer(func(_ context.Context, ev kafka.EventNotification) error {
		got = append(got, ev)
		if ev.Title == "fail" {
			return errors.New("feed closed")
		}
		return nil
	}, zap.NewNop())

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 4)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 1, Topic: kafka.NotificationTopic, Value: []byte(`{"type":"new_book","title":"New arrivals","message":"100 new books"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 2, Topic: kafka.NotificationTopic, Value: []byte(`not json`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 3, Topic: kafka.NotificationTopic, Value: []byte(`{"username":"reader","title":"fail"}`)}
	claim.messages <- &sarama.ConsumerMessage{Offset: 4, Topic: kafka.NotificationTopic, Value: []byte(`{"type":"system"}`)}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, consumer.Setup(session))
	require.NoError(t, consumer.Setup(session))
	<-consumer.Ready()

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.NoError(t, consumer.Cleanup(session))

	require.Equal(t, []int64{1, 2, 3, 4}, session.marked)
	require.Equal(t, []kafka.EventNotification{
		{Type: "new_book", Title: "New arrivals", Message: "100 new books"},
		{UserName: "reader", Title: "fail"},
	}, got)
}

func TestConsumer_StopsOnSessionEnd(t *testing.T) {
	t.Parallel()
	consumer := NewConsumer(func(context.Context, kafka.EventNotification) error { return nil }, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session := &fakeSession{ctx: ctx}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	require.Empty(t, session.marked)
}
