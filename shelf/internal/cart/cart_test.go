package cart_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/myshelf/shelf/internal/cart"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func lookup(books ...model.Book) cart.Lookup {
	return func(id string) (model.Book, bool) {
		for _, b := range books {
			if b.ID == id {
				return b, true
			}
		}
		return model.Book{}, false
	}
}

func TestCart_AddIsIdempotent(t *testing.T) {
	t.Parallel()
	c := cart.New(func() time.Time { return now })

	c.Add("1")
	items := c.Add("1")

	require.Len(t, items, 1)
	require.Equal(t, model.CartItem{BookID: "1", AddedDate: now}, items[0])
	require.True(t, c.Contains("1"))
}

func TestCart_RemoveAndClear(t *testing.T) {
	t.Parallel()
	c := cart.New(func() time.Time { return now })
	c.Add("1")
	c.Add("2")
	c.Add("3")

	items := c.Remove("2")
	require.Equal(t, []string{"1", "3"}, c.ProceedToRental())
	require.Len(t, items, 2)

	require.Len(t, c.Remove("missing"), 2)

	c.Clear()
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.ProceedToRental())
}

func TestCart_ViewDropsUnknownBooks(t *testing.T) {
	t.Parallel()
	c := cart.New(func() time.Time { return now })
	c.Add("1")
	c.Add("X")

	view := c.View(lookup(model.Book{ID: "1", Title: "Demian"}))

	require.Equal(t, 1, view.Count)
	require.Len(t, view.Items, 1)
	require.Equal(t, "Demian", view.Items[0].Book.Title)
	// the stale item stays in the cart itself
	require.Equal(t, 2, c.Len())
}

func TestCart_ProceedToRentalDoesNotMutate(t *testing.T) {
	t.Parallel()
	c := cart.New(nil)
	c.Add("1")
	c.Add("2")

	ids := c.ProceedToRental()
	ids[0] = "changed"

	require.Equal(t, []string{"1", "2"}, c.ProceedToRental())
}
