// Package review filters, sorts and aggregates the review snapshot and picks
// recommendations from the catalog.
package review

import (
	"sort"

	"github.com/Astemirdum/myshelf/shelf/internal/model"
)

// FilterByMinRating keeps reviews rated at least threshold. A threshold of
// zero or less keeps everything.
func FilterByMinRating(reviews []model.Review, threshold int) []model.Review {
	out := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		if threshold <= 0 || r.Rating >= threshold {
			out = append(out, r)
		}
	}
	return out
}

func FilterByBook(reviews []model.Review, bookID string) []model.Review {
	if bookID == "" {
		return append([]model.Review(nil), reviews...)
	}
	out := make([]model.Review, 0)
	for _, r := range reviews {
		if r.BookID == bookID {
			out = append(out, r)
		}
	}
	return out
}

// SortBy returns a sorted copy. Equal keys keep their input order; latest is the default.
func SortBy(reviews []model.Review, key model.ReviewSort) []model.Review {
	out := append([]model.Review(nil), reviews...)
	var less func(a, b model.Review) bool
	switch key {
	case model.ReviewSortHelpful:
		less = func(a, b model.Review) bool { return a.Likes > b.Likes }
	case model.ReviewSortRating:
		less = func(a, b model.Review) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b model.Review) bool { return a.Date.After(b.Date.Time) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// AverageRating is false when the book has no reviews.
func AverageRating(reviews []model.Review, bookID string) (float64, bool) {
	sum, n := 0, 0
	for _, r := range reviews {
		if r.BookID == bookID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

func Summary(reviews []model.Review, bookID string) model.RatingSummary {
	s := model.RatingSummary{BookID: bookID, Distribution: make(map[int]int, 5)}
	for star := 1; star <= 5; star++ {
		s.Distribution[star] = 0
	}
	for _, r := range reviews {
		if r.BookID != bookID {
			continue
		}
		s.Count++
		s.Distribution[r.Rating]++
	}
	if avg, ok := AverageRating(reviews, bookID); ok {
		s.AverageRating = &avg
	}
	return s
}

// TopRated orders by rating, then review count, and keeps the first n.
func TopRated(books []model.Book, n int) []model.Book {
	out := append([]model.Book(nil), books...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ReviewCount > out[j].ReviewCount
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
