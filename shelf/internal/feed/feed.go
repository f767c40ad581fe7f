// Package feed is a user's notification list. Newest notifications come first.
package feed

import (
	"time"

	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/google/uuid"
)

type Feed struct {
	items []model.Notification
	now   func() time.Time
}

func New(now func() time.Time) *Feed {
	if now == nil {
		now = time.Now
	}
	return &Feed{now: now}
}

// Push prepends n, filling in the id and date when they are empty.
func (f *Feed) Push(n model.Notification) model.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Date.IsZero() {
		n.Date = f.now()
	}
	f.items = append([]model.Notification{n}, f.items...)
	return n
}

func (f *Feed) List() []model.Notification {
	out := make([]model.Notification, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Feed) Unread() int {
	n := 0
	for i := range f.items {
		if !f.items[i].IsRead {
			n++
		}
	}
	return n
}

// MarkRead reports whether id was found.
func (f *Feed) MarkRead(id string) bool {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsRead = true
			return true
		}
	}
	return false
}

func (f *Feed) MarkAllRead() {
	for i := range f.items {
		f.items[i].IsRead = true
	}
}

func (f *Feed) Clear() {
	f.items = nil
}

func (f *Feed) Len() int {
	return len(f.items)
}
