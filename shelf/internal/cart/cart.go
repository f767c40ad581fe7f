// Package cart keeps the books a user has selected for an upcoming rental.
package cart

import (
	"time"

	"github.com/Astemirdum/myshelf/shelf/internal/model"
)

// Lookup resolves a book id against the catalog.
type Lookup func(id string) (model.Book, bool)

// Cart holds at most one item per book, in insertion order.
type Cart struct {
	items []model.CartItem
	now   func() time.Time
}

func New(now func() time.Time) *Cart {
	if now == nil {
		now = time.Now
	}
	return &Cart{now: now}
}

func (c *Cart) indexOf(bookID string) int {
	for i := range c.items {
		if c.items[i].BookID == bookID {
			return i
		}
	}
	return -1
}

// Add selects the book. Selecting it twice changes nothing.
func (c *Cart) Add(bookID string) []model.CartItem {
	if c.indexOf(bookID) < 0 {
		c.items = append(c.items, model.CartItem{BookID: bookID, AddedDate: c.now()})
	}
	return c.Items()
}

func (c *Cart) Remove(bookID string) []model.CartItem {
	if i := c.indexOf(bookID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	return c.Items()
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Contains(bookID string) bool {
	return c.indexOf(bookID) >= 0
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Items() []model.CartItem {
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// View joins items with their books, dropping items the catalog no longer knows.
func (c *Cart) View(lookup Lookup) model.CartView {
	entries := make([]model.CartEntry, 0, len(c.items))
	for _, item := range c.items {
		book, ok := lookup(item.BookID)
		if !ok {
			continue
		}
		entries = append(entries, model.CartEntry{CartItem: item, Book: book})
	}
	return model.CartView{Count: len(entries), Items: entries}
}

// ProceedToRental hands the selected ids to the rental flow without changing the cart.
func (c *Cart) ProceedToRental() []string {
	ids := make([]string, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.BookID)
	}
	return ids
}
