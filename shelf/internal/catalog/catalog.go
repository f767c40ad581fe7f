// Package catalog holds the book list shared by every session and the
// filtering and sorting used by search and home.
//
// A Catalog is not safe for concurrent use; the service serializes access.
package catalog

import (
	"sort"
	"strings"

	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
)

const (
	CategoryAll = "all"

	recommendedMinRating = 4.5
)

type Catalog struct {
	books []model.Book
	index map[string]int
}

// New copies books, clamps copy counts into [0, total] and derives availability.
func New(books []model.Book) *Catalog {
	c := &Catalog{
		books: make([]model.Book, 0, len(books)),
		index: make(map[string]int, len(books)),
	}
	for _, b := range books {
		if _, ok := c.index[b.ID]; ok {
			continue
		}
		if b.TotalCopies < 0 {
			b.TotalCopies = 0
		}
		b.AvailableCopies = clamp(b.AvailableCopies, 0, b.TotalCopies)
		b.IsAvailable = b.AvailableCopies > 0
		c.index[b.ID] = len(c.books)
		c.books = append(c.books, b)
	}
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (c *Catalog) Get(id string) (model.Book, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Book{}, false
	}
	return c.books[i], true
}

func (c *Catalog) All() []model.Book {
	out := make([]model.Book, len(c.books))
	copy(out, c.books)
	return out
}

func (c *Catalog) Len() int {
	return len(c.books)
}

// Checkout takes one copy of the book.
func (c *Catalog) Checkout(id string) (model.Book, error) {
	i, ok := c.index[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	b := &c.books[i]
	if b.AvailableCopies <= 0 {
		return *b, errs.ErrUnavailable
	}
	b.AvailableCopies--
	b.IsAvailable = b.AvailableCopies > 0
	return *b, nil
}

// Checkin puts one copy back. A book already at full stock is left as is.
func (c *Catalog) Checkin(id string) (model.Book, error) {
	i, ok := c.index[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	b := &c.books[i]
	if b.AvailableCopies < b.TotalCopies {
		b.AvailableCopies++
	}
	b.IsAvailable = b.AvailableCopies > 0
	return *b, nil
}

func (c *Catalog) Search(q model.BookQuery) []model.Book {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	out := make([]model.Book, 0, len(c.books))
	for _, b := range c.books {
		if q.Category != "" && q.Category != CategoryAll && b.Category != q.Category {
			continue
		}
		if term != "" && !matches(b, term) {
			continue
		}
		switch q.Availability {
		case model.AvailabilityAvailable:
			if !b.IsAvailable {
				continue
			}
		case model.AvailabilityBorrowed:
			if b.IsAvailable {
				continue
			}
		}
		if b.Rating < q.MinRating {
			continue
		}
		out = append(out, b)
	}
	SortBooks(out, q.Sort)
	return out
}

func matches(b model.Book, term string) bool {
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Author), term) ||
		strings.Contains(strings.ToLower(b.Publisher), term)
}

// SortBooks sorts in place; an unknown key keeps catalog order.
func SortBooks(books []model.Book, by model.BookSort) {
	var less func(a, b model.Book) bool
	switch by {
	case model.BookSortTitle:
		less = func(a, b model.Book) bool { return a.Title < b.Title }
	case model.BookSortAuthor:
		less = func(a, b model.Book) bool { return a.Author < b.Author }
	case model.BookSortRating:
		less = func(a, b model.Book) bool { return a.Rating > b.Rating }
	case model.BookSortDate:
		less = func(a, b model.Book) bool { return a.PublishedDate.After(b.PublishedDate.Time) }
	default:
		return
	}
	sort.SliceStable(books, func(i, j int) bool { return less(books[i], books[j]) })
}

func (c *Catalog) Recommended() []model.Book {
	return c.Search(model.BookQuery{MinRating: recommendedMinRating})
}

func (c *Catalog) NewArrivals(n int) []model.Book {
	books := c.Search(model.BookQuery{Sort: model.BookSortDate})
	if n >= 0 && n < len(books) {
		books = books[:n]
	}
	return books
}

// Categories lists distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, b := range c.books {
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		out = append(out, b.Category)
	}
	return out
}
