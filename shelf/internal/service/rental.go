package service

import (
	"context"
	"time"

	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Service) Cart(_ context.Context, userName string) (model.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return model.CartView{}, err
	}
	return ss.cart.View(s.catalog.Get), nil
}

// AddToCart selects a catalog book. Adding a book twice is a no-op.
func (s *Service) AddToCart(_ context.Context, userName, bookID string) (model.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return model.CartView{}, err
	}
	if _, ok := s.catalog.Get(bookID); !ok {
		return model.CartView{}, errors.Wrapf(errs.ErrNotFound, "book %s", bookID)
	}
	ss.cart.Add(bookID)
	return ss.cart.View(s.catalog.Get), nil
}

func (s *Service) RemoveFromCart(_ context.Context, userName, bookID string) (model.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return model.CartView{}, err
	}
	ss.cart.Remove(bookID)
	return ss.cart.View(s.catalog.Get), nil
}

func (s *Service) ClearCart(_ context.Context, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return err
	}
	ss.cart.Clear()
	return nil
}

// Checkout borrows everything in the cart. Books that were borrowed leave the
// cart; the ones that failed stay selected.
func (s *Service) Checkout(ctx context.Context, userName string, periodDays int) (model.BorrowResult, error) {
	s.mu.Lock()
	ss, err := s.session(userName)
	if err != nil {
		s.mu.Unlock()
		return model.BorrowResult{}, err
	}
	ids := ss.cart.ProceedToRental()
	if len(ids) == 0 {
		s.mu.Unlock()
		return model.BorrowResult{}, errs.ErrEmptyCart
	}
	res, evs, err := s.borrow(ss, userName, ids, periodDays)
	if err != nil {
		s.mu.Unlock()
		return model.BorrowResult{}, err
	}
	for _, r := range res.Succeeded {
		ss.cart.Remove(r.BookID)
	}
	s.mu.Unlock()

	s.publish(ctx, evs...)
	return res, nil
}

func (s *Service) Borrow(ctx context.Context, userName string, req model.BorrowRequest) (model.BorrowResult, error) {
	s.mu.Lock()
	ss, err := s.session(userName)
	if err != nil {
		s.mu.Unlock()
		return model.BorrowResult{}, err
	}
	res, evs, err := s.borrow(ss, userName, req.BookIDs, req.PeriodDays)
	s.mu.Unlock()
	if err != nil {
		return model.BorrowResult{}, err
	}

	s.publish(ctx, evs...)
	return res, nil
}

// borrow runs under s.mu.
func (s *Service) borrow(ss *session, userName string, ids []string, periodDays int) (model.BorrowResult, []kafka.EventRental, error) {
	out, err := ss.ledger.Borrow(ids, periodDays)
	if err != nil {
		return model.BorrowResult{}, nil, err
	}
	res := model.BorrowResult{
		Succeeded: make([]model.RentalView, 0, len(out.Succeeded)),
		Failed:    out.Failed,
	}
	evs := make([]kafka.EventRental, 0, len(out.Succeeded))
	for _, r := range out.Succeeded {
		res.Succeeded = append(res.Succeeded, s.view(ss, r))
		evs = append(evs, s.rentalEvent(kafka.EventBorrowed, userName, r))
	}
	if len(out.Failed) > 0 {
		s.log.Debug("borrow partially failed", zap.String("user", userName), zap.Any("failed", out.Failed))
	}
	return res, evs, nil
}

func (s *Service) Renew(ctx context.Context, userName, rentalID string) (model.RentalView, error) {
	s.mu.Lock()
	ss, err := s.session(userName)
	if err != nil {
		s.mu.Unlock()
		return model.RentalView{}, err
	}
	r, err := ss.ledger.Renew(rentalID)
	if err != nil {
		s.mu.Unlock()
		return model.RentalView{}, err
	}
	// the new due date may earn a fresh reminder
	delete(ss.reminded, r.ID)
	v := s.view(ss, r)
	s.mu.Unlock()

	s.publish(ctx, s.rentalEvent(kafka.EventRenewed, userName, r))
	return v, nil
}

func (s *Service) Return(ctx context.Context, userName, rentalID string) (model.RentalView, error) {
	s.mu.Lock()
	ss, err := s.session(userName)
	if err != nil {
		s.mu.Unlock()
		return model.RentalView{}, err
	}
	r, err := ss.ledger.Return(rentalID)
	if err != nil {
		s.mu.Unlock()
		return model.RentalView{}, err
	}
	delete(ss.reminded, r.ID)
	v := s.view(ss, r)
	s.mu.Unlock()

	s.publish(ctx, s.rentalEvent(kafka.EventReturned, userName, r))
	return v, nil
}

func (s *Service) Shelf(_ context.Context, userName string) (model.ShelfView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return model.ShelfView{}, err
	}
	return model.ShelfView{
		Current: s.views(ss, ss.ledger.Current()),
		History: s.views(ss, ss.ledger.History()),
		Stats:   ss.ledger.Stats(),
	}, nil
}

func (s *Service) view(ss *session, r model.Rental) model.RentalView {
	v := ss.ledger.View(r)
	v.Book = s.book(r.BookID)
	return v
}

func (s *Service) views(ss *session, rentals []model.Rental) []model.RentalView {
	out := make([]model.RentalView, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, s.view(ss, r))
	}
	return out
}

func (s *Service) rentalEvent(typ kafka.RentalEventType, userName string, r model.Rental) kafka.EventRental {
	return kafka.EventRental{
		Timestamp:    s.now(),
		EventType:    typ,
		UserName:     userName,
		RentalID:     r.ID,
		BookID:       r.BookID,
		DueDate:      r.DueDate.Format(time.DateOnly),
		RenewalCount: r.RenewalCount,
	}
}

// publish never fails the caller: rentals are recorded before events go out.
func (s *Service) publish(ctx context.Context, evs ...kafka.EventRental) {
	for _, ev := range evs {
		if err := s.events.PublishRental(ctx, ev); err != nil {
			s.log.Warn("publish rental event",
				zap.String("rental", ev.RentalID),
				zap.String("event", string(ev.EventType)),
				zap.Error(err))
		}
	}
}
