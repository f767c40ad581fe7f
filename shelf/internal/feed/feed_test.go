package feed_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/myshelf/shelf/internal/feed"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/stretchr/testify/require"
)

func TestFeed(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	f := feed.New(func() time.Time { return now })

	first := f.Push(model.Notification{Type: model.NotificationDueSoon, Title: "Due soon"})
	second := f.Push(model.Notification{ID: "n2", Type: model.NotificationNewBook, Title: "New arrivals"})

	require.NotEmpty(t, first.ID)
	require.Equal(t, now, first.Date)
	require.Equal(t, "n2", second.ID)

	list := f.List()
	require.Equal(t, []string{"n2", first.ID}, []string{list[0].ID, list[1].ID})
	require.Equal(t, 2, f.Unread())

	require.True(t, f.MarkRead(first.ID))
	require.False(t, f.MarkRead("unknown"))
	require.Equal(t, 1, f.Unread())
	require.True(t, f.List()[1].IsRead)

	f.MarkAllRead()
	require.Equal(t, 0, f.Unread())
	require.Equal(t, 2, f.Len())

	f.Clear()
	require.Empty(t, f.List())
	require.Equal(t, 0, f.Unread())
}
