// Package ledger records what one user has borrowed: current rentals and
// history, with renewal limits and due-date arithmetic.
//
// A Ledger is not safe for concurrent use; the service serializes access.
package ledger

import (
	"time"

	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Stock is the copy accounting the ledger borrows from.
type Stock interface {
	Checkout(bookID string) (model.Book, error)
	Checkin(bookID string) (model.Book, error)
}

type Policy struct {
	MaxRenewals int
	RenewalDays int
	DueSoonDays int
	// MaxBorrowLimit caps active rentals; 0 disables the cap.
	MaxBorrowLimit      int
	LateFeePerDay       int
	AllowOverdueRenewal bool
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRenewals:         2,
		RenewalDays:         7,
		DueSoonDays:         3,
		MaxBorrowLimit:      5,
		LateFeePerDay:       100,
		AllowOverdueRenewal: true,
	}
}

type Outcome struct {
	Succeeded []model.Rental
	Failed    []model.BorrowFailure
}

type Ledger struct {
	userID  string
	policy  Policy
	stock   Stock
	now     func() time.Time
	rentals []model.Rental
	index   map[string]int
}

func New(userID string, stock Stock, policy Policy, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		userID: userID,
		policy: policy,
		stock:  stock,
		now:    now,
		index:  make(map[string]int),
	}
}

func (l *Ledger) Policy() Policy {
	return l.policy
}

func (l *Ledger) today() model.Date {
	return model.NewDate(l.now())
}

// Borrow checks out one copy per distinct id. Ids that cannot be borrowed are
// reported in Outcome.Failed and do not affect the others.
func (l *Ledger) Borrow(bookIDs []string, periodDays int) (Outcome, error) {
	if periodDays <= 0 {
		return Outcome{}, errs.ErrInvalidPeriod
	}
	out := Outcome{
		Succeeded: make([]model.Rental, 0, len(bookIDs)),
		Failed:    make([]model.BorrowFailure, 0),
	}
	active := l.activeCount()
	seen := make(map[string]struct{}, len(bookIDs))
	for _, id := range bookIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if l.policy.MaxBorrowLimit > 0 && active >= l.policy.MaxBorrowLimit {
			out.Failed = append(out.Failed, model.BorrowFailure{BookID: id, Reason: errs.ErrBorrowLimitExceeded.Error()})
			continue
		}
		if _, err := l.stock.Checkout(id); err != nil {
			out.Failed = append(out.Failed, model.BorrowFailure{BookID: id, Reason: err.Error()})
			continue
		}
		today := l.today()
		r := model.Rental{
			ID:          uuid.NewString(),
			BookID:      id,
			UserID:      l.userID,
			BorrowDate:  today,
			DueDate:     today.AddDays(periodDays),
			Status:      model.StatusBorrowed,
			MaxRenewals: l.policy.MaxRenewals,
		}
		l.index[r.ID] = len(l.rentals)
		l.rentals = append(l.rentals, r)
		out.Succeeded = append(out.Succeeded, r)
		active++
	}
	return out, nil
}

func (l *Ledger) activeCount() int {
	n := 0
	for i := range l.rentals {
		if l.rentals[i].ReturnDate == nil {
			n++
		}
	}
	return n
}

// open returns a rental that has not been returned yet.
func (l *Ledger) open(rentalID string) (*model.Rental, error) {
	i, ok := l.index[rentalID]
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "rental %s", rentalID)
	}
	r := &l.rentals[i]
	if r.ReturnDate != nil {
		return nil, errors.Wrapf(errs.ErrNotFound, "rental %s already returned", rentalID)
	}
	return r, nil
}

// Renew pushes the due date back by the renewal period.
// The renewal limit applies to overdue rentals as well.
func (l *Ledger) Renew(rentalID string) (model.Rental, error) {
	r, err := l.open(rentalID)
	if err != nil {
		return model.Rental{}, err
	}
	now := l.now()
	if r.RenewalCount >= r.MaxRenewals {
		return model.Rental{}, errs.ErrRenewalLimitExceeded
	}
	if !l.policy.AllowOverdueRenewal && StatusAt(*r, now) == model.StatusOverdue {
		return model.Rental{}, errs.ErrRenewalOverdue
	}
	r.RenewalCount++
	r.DueDate = r.DueDate.AddDays(l.policy.RenewalDays)
	return l.snapshot(*r, now), nil
}

func (l *Ledger) Return(rentalID string) (model.Rental, error) {
	r, err := l.open(rentalID)
	if err != nil {
		return model.Rental{}, err
	}
	if _, err := l.stock.Checkin(r.BookID); err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.Rental{}, err
	}
	today := l.today()
	r.ReturnDate = &today
	r.Status = model.StatusReturned
	return *r, nil
}

func (l *Ledger) Get(rentalID string) (model.Rental, bool) {
	i, ok := l.index[rentalID]
	if !ok {
		return model.Rental{}, false
	}
	return l.snapshot(l.rentals[i], l.now()), true
}

func (l *Ledger) snapshot(r model.Rental, now time.Time) model.Rental {
	r.Status = StatusAt(r, now)
	if r.ReturnDate != nil {
		d := *r.ReturnDate
		r.ReturnDate = &d
	}
	return r
}

// Rentals returns every rental, oldest first, with status as of now.
func (l *Ledger) Rentals() []model.Rental {
	now := l.now()
	out := make([]model.Rental, 0, len(l.rentals))
	for _, r := range l.rentals {
		out = append(out, l.snapshot(r, now))
	}
	return out
}

func (l *Ledger) Current() []model.Rental {
	return l.filter(func(r model.Rental) bool { return r.Status != model.StatusReturned })
}

func (l *Ledger) History() []model.Rental {
	return l.filter(func(r model.Rental) bool { return r.Status == model.StatusReturned })
}

func (l *Ledger) filter(keep func(model.Rental) bool) []model.Rental {
	all := l.Rentals()
	out := make([]model.Rental, 0, len(all))
	for _, r := range all {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (l *Ledger) View(r model.Rental) model.RentalView {
	now := l.now()
	return model.RentalView{
		Rental:        l.snapshot(r, now),
		DaysRemaining: DaysRemaining(r, now),
		Badge:         BadgeAt(r, now, l.policy.DueSoonDays),
		LateFee:       LateFee(r, now, l.policy.LateFeePerDay),
	}
}

func (l *Ledger) Stats() model.ShelfStats {
	now := l.now()
	var st model.ShelfStats
	for _, r := range l.rentals {
		st.LateFees += LateFee(r, now, l.policy.LateFeePerDay)
		switch BadgeAt(r, now, l.policy.DueSoonDays) {
		case model.BadgeReturned:
			st.Returned++
			continue
		case model.BadgeOverdue:
			st.Overdue++
		case model.BadgeDueSoon:
			st.DueSoon++
		}
		st.Current++
	}
	return st
}

// StatusAt derives the status: returned when a return date is set, overdue
// once the due date has passed.
func StatusAt(r model.Rental, now time.Time) model.RentalStatus {
	if r.ReturnDate != nil {
		return model.StatusReturned
	}
	if model.NewDate(now).After(r.DueDate.Time) {
		return model.StatusOverdue
	}
	return model.StatusBorrowed
}

// DaysRemaining counts calendar days from now to the due date, read in the
// due date's zone; negative means overdue.
func DaysRemaining(r model.Rental, now time.Time) int {
	return calendarDays(now.In(r.DueDate.Location()), r.DueDate.Time)
}

// calendarDays is the number of midnights between the dates of from and to.
// Both are moved to UTC first so a DST shift never adds or drops an hour.
func calendarDays(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

func BadgeAt(r model.Rental, now time.Time, dueSoonDays int) model.Badge {
	if r.ReturnDate != nil {
		return model.BadgeReturned
	}
	switch d := DaysRemaining(r, now); {
	case d < 0:
		return model.BadgeOverdue
	case d <= dueSoonDays:
		return model.BadgeDueSoon
	default:
		return model.BadgeActive
	}
}

// LateFee charges feePerDay for each day past due, up to the return date
// for returned rentals.
func LateFee(r model.Rental, now time.Time, feePerDay int) int {
	end := now
	if r.ReturnDate != nil {
		end = r.ReturnDate.Time
	}
	days := -DaysRemaining(r, end)
	if days <= 0 {
		return 0
	}
	return days * feePerDay
}
