package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmbedded_Snapshot(t *testing.T) {
	t.Parallel()
	repo := NewEmbedded(zap.NewNop())

	s, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, s.Books, 4)
	require.Len(t, s.Reviews, 3)
	require.Len(t, s.Notices, 3)
	require.NotEmpty(t, s.FAQs)

	ids := make(map[string]struct{}, len(s.Books))
	for _, b := range s.Books {
		_, dup := ids[b.ID]
		require.False(t, dup, "duplicate book id %s", b.ID)
		ids[b.ID] = struct{}{}
		require.LessOrEqual(t, b.AvailableCopies, b.TotalCopies)
		require.False(t, b.PublishedDate.IsZero())
	}

	require.Equal(t, "Demian", s.Books[0].Title)
	require.Equal(t, time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC), s.Books[0].PublishedDate.Time)

	for _, r := range s.Reviews {
		_, ok := ids[r.BookID]
		require.True(t, ok, "review %s points to unknown book", r.ID)
		require.True(t, r.Rating >= 1 && r.Rating <= 5)
	}
}

func TestReadSeed_Missing(t *testing.T) {
	t.Parallel()
	_, err := readSeed[struct{}]("nope.json")
	require.Error(t, err)
}
