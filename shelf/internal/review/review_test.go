package review_test

import (
	"sort"
	"testing"
	"time"

	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/Astemirdum/myshelf/shelf/internal/review"
	"github.com/stretchr/testify/require"
)

func date(s string) model.Date {
	t, _ := time.Parse(time.DateOnly, s)
	return model.Date{Time: t}
}

func reviews() []model.Review {
	return []model.Review{
		{ID: "1", BookID: "1", Rating: 5, Date: date("2024-02-10"), Likes: 15},
		{ID: "2", BookID: "2", Rating: 5, Date: date("2024-02-09"), Likes: 23},
		{ID: "3", BookID: "3", Rating: 4, Date: date("2024-02-08"), Likes: 18},
		{ID: "4", BookID: "1", Rating: 3, Date: date("2024-02-11"), Likes: 18},
	}
}

func ids(rs []model.Review) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterByMinRating(t *testing.T) {
	t.Parallel()
	rs := []model.Review{
		{ID: "a", Rating: 5, Date: date("2024-02-01")},
		{ID: "b", Rating: 3, Date: date("2024-02-02")},
	}
	require.Equal(t, []string{"a"}, ids(review.FilterByMinRating(rs, 4)))
	require.Equal(t, []string{"a", "b"}, ids(review.FilterByMinRating(rs, 0)))
	require.Empty(t, review.FilterByMinRating(rs, 6))
}

func TestSortBy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		key  model.ReviewSort
		want []string
	}{
		{key: model.ReviewSortLatest, want: []string{"4", "1", "2", "3"}},
		{key: model.ReviewSortHelpful, want: []string{"2", "3", "4", "1"}},
		{key: model.ReviewSortRating, want: []string{"1", "2", "3", "4"}},
		{key: "", want: []string{"4", "1", "2", "3"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()
			in := reviews()
			got := review.SortBy(in, tt.key)
			require.Equal(t, tt.want, ids(got))
			// input untouched
			require.Equal(t, []string{"1", "2", "3", "4"}, ids(in))
		})
	}
}

func TestSortBy_IsPermutation(t *testing.T) {
	t.Parallel()
	in := reviews()
	byRating := ids(review.SortBy(in, model.ReviewSortRating))
	byLatest := ids(review.SortBy(in, model.ReviewSortLatest))
	sort.Strings(byRating)
	sort.Strings(byLatest)
	require.Equal(t, byRating, byLatest)
	require.Len(t, byRating, len(in))
}

func TestAverageRatingAndSummary(t *testing.T) {
	t.Parallel()
	avg, ok := review.AverageRating(reviews(), "1")
	require.True(t, ok)
	require.InDelta(t, 4.0, avg, 1e-9)

	_, ok = review.AverageRating(reviews(), "none")
	require.False(t, ok)

	s := review.Summary(reviews(), "1")
	require.Equal(t, 2, s.Count)
	require.NotNil(t, s.AverageRating)
	require.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 1}, s.Distribution)

	empty := review.Summary(reviews(), "none")
	require.Nil(t, empty.AverageRating)
	require.Zero(t, empty.Count)
}

func TestTopRated(t *testing.T) {
	t.Parallel()
	books := []model.Book{
		{ID: "1", Rating: 4.5, ReviewCount: 128},
		{ID: "2", Rating: 4.8, ReviewCount: 95},
		{ID: "3", Rating: 4.5, ReviewCount: 203},
		{ID: "4", Rating: 4.3, ReviewCount: 67},
	}
	got := review.TopRated(books, 3)
	require.Equal(t, []string{"2", "3", "1"}, []string{got[0].ID, got[1].ID, got[2].ID})
	require.Len(t, review.TopRated(books, 10), 4)
	require.Equal(t, "1", books[0].ID)
}
