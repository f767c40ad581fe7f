package ledger_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/Astemirdum/myshelf/shelf/internal/catalog"
	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/ledger"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/stretchr/testify/require"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

const day = 24 * time.Hour

func newLedger(t *testing.T, policy ledger.Policy) (*ledger.Ledger, *catalog.Catalog, *clock) {
	t.Helper()
	clk := &clock{t: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)}
	cat := catalog.New([]model.Book{
		{ID: "A", Title: "Demian", TotalCopies: 3, AvailableCopies: 2},
		{ID: "B", Title: "Clean Code", TotalCopies: 3, AvailableCopies: 1},
		{ID: "C", Title: "Sapiens", TotalCopies: 4, AvailableCopies: 0},
	})
	return ledger.New("reader", cat, policy, clk.now), cat, clk
}

func available(t *testing.T, c *catalog.Catalog, id string) int {
	t.Helper()
	b, ok := c.Get(id)
	require.True(t, ok)
	return b.AvailableCopies
}

func TestLedger_Borrow(t *testing.T) {
	t.Parallel()
	l, cat, clk := newLedger(t, ledger.DefaultPolicy())

	out, err := l.Borrow([]string{"A"}, 14)
	require.NoError(t, err)
	require.Len(t, out.Succeeded, 1)
	require.Empty(t, out.Failed)

	r := out.Succeeded[0]
	require.Equal(t, 1, available(t, cat, "A"))
	require.Equal(t, model.StatusBorrowed, r.Status)
	require.Equal(t, "reader", r.UserID)
	require.Equal(t, model.NewDate(clk.now()), r.BorrowDate)
	require.Equal(t, r.BorrowDate.AddDate(0, 0, 14), r.DueDate.Time)
	require.Equal(t, 2, r.MaxRenewals)
	require.NotEmpty(t, r.ID)
}

func TestLedger_BorrowReportsFailures(t *testing.T) {
	t.Parallel()
	l, cat, _ := newLedger(t, ledger.DefaultPolicy())

	out, err := l.Borrow([]string{"B", "C", "missing", "B"}, 7)
	require.NoError(t, err)
	require.Len(t, out.Succeeded, 1)
	require.Equal(t, "B", out.Succeeded[0].BookID)
	require.Equal(t, []model.BorrowFailure{
		{BookID: "C", Reason: errs.ErrUnavailable.Error()},
		{BookID: "missing", Reason: errs.ErrNotFound.Error()},
	}, out.Failed)
	require.Equal(t, 0, available(t, cat, "B"))
	require.Equal(t, 0, available(t, cat, "C"))
}

func TestLedger_BorrowLimit(t *testing.T) {
	t.Parallel()
	policy := ledger.DefaultPolicy()
	policy.MaxBorrowLimit = 1
	l, cat, _ := newLedger(t, policy)

	out, err := l.Borrow([]string{"A", "B"}, 7)
	require.NoError(t, err)
	require.Len(t, out.Succeeded, 1)
	require.Equal(t, []model.BorrowFailure{{BookID: "B", Reason: errs.ErrBorrowLimitExceeded.Error()}}, out.Failed)
	require.Equal(t, 1, available(t, cat, "B"))

	_, err = l.Return(out.Succeeded[0].ID)
	require.NoError(t, err)
	out, err = l.Borrow([]string{"B"}, 7)
	require.NoError(t, err)
	require.Len(t, out.Succeeded, 1)
}

func TestLedger_BorrowInvalidPeriod(t *testing.T) {
	t.Parallel()
	l, cat, _ := newLedger(t, ledger.DefaultPolicy())
	_, err := l.Borrow([]string{"A"}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidPeriod)
	require.Equal(t, 2, available(t, cat, "A"))
}

func TestLedger_BorrowThenReturnRestoresCopies(t *testing.T) {
	t.Parallel()
	l, cat, clk := newLedger(t, ledger.DefaultPolicy())
	before := available(t, cat, "A")

	out, err := l.Borrow([]string{"A"}, 14)
	require.NoError(t, err)
	clk.advance(3 * day)

	r, err := l.Return(out.Succeeded[0].ID)
	require.NoError(t, err)
	require.Equal(t, before, available(t, cat, "A"))
	require.Equal(t, model.StatusReturned, r.Status)
	require.NotNil(t, r.ReturnDate)
	require.Equal(t, model.NewDate(clk.now()), *r.ReturnDate)

	_, err = l.Return(r.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = l.Return("unknown")
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.Len(t, l.History(), 1)
	require.Empty(t, l.Current())
}

func TestLedger_RenewLimit(t *testing.T) {
	t.Parallel()
	policy := ledger.DefaultPolicy()
	l, _, _ := newLedger(t, policy)
	out, err := l.Borrow([]string{"A"}, 14)
	require.NoError(t, err)
	id := out.Succeeded[0].ID
	due := out.Succeeded[0].DueDate

	for i := 1; i <= policy.MaxRenewals; i++ {
		r, err := l.Renew(id)
		require.NoError(t, err)
		require.Equal(t, i, r.RenewalCount)
		require.Equal(t, due.AddDate(0, 0, 7*i), r.DueDate.Time)
	}

	_, err = l.Renew(id)
	require.ErrorIs(t, err, errs.ErrRenewalLimitExceeded)

	r, ok := l.Get(id)
	require.True(t, ok)
	require.Equal(t, policy.MaxRenewals, r.RenewalCount)
	require.Equal(t, due.AddDate(0, 0, 7*policy.MaxRenewals), r.DueDate.Time)

	_, err = l.Renew("unknown")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestLedger_RenewOverdue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		allow      bool
		wantErr    error
		wantStatus model.RentalStatus
	}{
		{name: "allowed by default", allow: true, wantStatus: model.StatusBorrowed},
		{name: "rejected by policy", allow: false, wantErr: errs.ErrRenewalOverdue, wantStatus: model.StatusOverdue},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			policy := ledger.DefaultPolicy()
			policy.AllowOverdueRenewal = tt.allow
			l, _, clk := newLedger(t, policy)
			out, err := l.Borrow([]string{"A"}, 7)
			require.NoError(t, err)
			id := out.Succeeded[0].ID

			clk.advance(9 * day)
			r, _ := l.Get(id)
			require.Equal(t, model.StatusOverdue, r.Status)

			_, err = l.Renew(id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			r, _ = l.Get(id)
			require.Equal(t, tt.wantStatus, r.Status)
		})
	}
}

func TestDaysRemaining_DecreasesDaily(t *testing.T) {
	t.Parallel()
	borrow := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	r := model.Rental{DueDate: model.NewDate(borrow).AddDays(14)}
	now := borrow.Add(13 * time.Hour)

	prev := ledger.DaysRemaining(r, now)
	require.Equal(t, 14, prev)
	for i := 0; i < 30; i++ {
		now = now.Add(day)
		d := ledger.DaysRemaining(r, now)
		require.Less(t, d, prev)
		prev = d
	}
	require.Equal(t, -16, prev)
}

func TestBadgeAt(t *testing.T) {
	t.Parallel()
	due := model.NewDate(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	returned := due
	tests := []struct {
		name   string
		rental model.Rental
		now    time.Time
		want   model.Badge
	}{
		{name: "active", rental: model.Rental{DueDate: due}, now: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), want: model.BadgeActive},
		{name: "due soon at three days", rental: model.Rental{DueDate: due}, now: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), want: model.BadgeDueSoon},
		{name: "due today", rental: model.Rental{DueDate: due}, now: time.Date(2024, 2, 15, 18, 0, 0, 0, time.UTC), want: model.BadgeDueSoon},
		{name: "overdue", rental: model.Rental{DueDate: due}, now: time.Date(2024, 2, 16, 1, 0, 0, 0, time.UTC), want: model.BadgeOverdue},
		{name: "returned", rental: model.Rental{DueDate: due, ReturnDate: &returned}, now: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: model.BadgeReturned},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ledger.BadgeAt(tt.rental, tt.now, 3))
		})
	}
}

func TestDaysRemaining_AcrossDSTChange(t *testing.T) {
	t.Parallel()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// clocks fall back on 2024-11-03 in New York.
	start := time.Date(2024, 11, 1, 10, 0, 0, 0, ny)
	tests := []struct {
		name      string
		due       model.Date
		now       time.Time
		wantDays  int
		wantBadge model.Badge
		wantFee   int
	}{
		{
			name:      "three days spanning fall back",
			due:       model.NewDate(start).AddDays(3),
			now:       start,
			wantDays:  3,
			wantBadge: model.BadgeDueSoon,
		},
		{
			name:      "two days spanning fall back",
			due:       model.NewDate(start).AddDays(3),
			now:       time.Date(2024, 11, 2, 0, 0, 0, 0, ny),
			wantDays:  2,
			wantBadge: model.BadgeDueSoon,
		},
		{
			name:      "late across the change",
			due:       model.NewDate(start),
			now:       time.Date(2024, 11, 4, 23, 30, 0, 0, ny),
			wantDays:  -3,
			wantBadge: model.BadgeOverdue,
			wantFee:   300,
		},
		{
			name:      "clock in another zone",
			due:       model.NewDate(start).AddDays(3),
			now:       time.Date(2024, 11, 1, 2, 0, 0, 0, time.UTC),
			wantDays:  4,
			wantBadge: model.BadgeActive,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := model.Rental{DueDate: tt.due}
			require.Equal(t, tt.wantDays, ledger.DaysRemaining(r, tt.now))
			require.Equal(t, tt.wantBadge, ledger.BadgeAt(r, tt.now, 3))
			require.Equal(t, tt.wantFee, ledger.LateFee(r, tt.now, 100))
		})
	}
}

func TestLateFeeAndStats(t *testing.T) {
	t.Parallel()
	l, _, clk := newLedger(t, ledger.DefaultPolicy())
	out, err := l.Borrow([]string{"A", "B"}, 7)
	require.NoError(t, err)
	_, err = l.Renew(out.Succeeded[1].ID)
	require.NoError(t, err)

	// A is due on day 7, B on day 14
	clk.advance(10 * day)
	view := l.View(out.Succeeded[0])
	require.Equal(t, model.BadgeOverdue, view.Badge)
	require.Equal(t, -3, view.DaysRemaining)
	require.Equal(t, 300, view.LateFee)

	st := l.Stats()
	require.Equal(t, model.ShelfStats{Current: 2, DueSoon: 0, Overdue: 1, Returned: 0, LateFees: 300}, st)

	_, err = l.Return(out.Succeeded[0].ID)
	require.NoError(t, err)
	clk.advance(2 * day)

	st = l.Stats()
	require.Equal(t, model.ShelfStats{Current: 1, DueSoon: 1, Overdue: 0, Returned: 1, LateFees: 300}, st)
}
