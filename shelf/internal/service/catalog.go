package service

import (
	"context"

	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/Astemirdum/myshelf/shelf/internal/review"
	"github.com/pkg/errors"
)

const (
	homeNewArrivals = 4
	homeNotices     = 3
	defaultTopRated = 5
)

func (s *Service) Home(_ context.Context) (model.HomeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.HomeView{
		Recommended: s.catalog.Recommended(),
		NewArrivals: s.catalog.NewArrivals(homeNewArrivals),
		Notices:     s.latestNotices(homeNotices),
	}, nil
}

func (s *Service) SearchBooks(_ context.Context, q model.BookQuery) ([]model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Search(q), nil
}

func (s *Service) Categories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Categories(), nil
}

func (s *Service) GetBook(_ context.Context, bookID string) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.catalog.Get(bookID)
	if !ok {
		return model.Book{}, errors.Wrapf(errs.ErrNotFound, "book %s", bookID)
	}
	return b, nil
}

func (s *Service) TopRated(_ context.Context, n int) ([]model.Book, error) {
	if n <= 0 {
		n = defaultTopRated
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return review.TopRated(s.catalog.All(), n), nil
}

func (s *Service) Reviews(_ context.Context, q model.ReviewQuery) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.reviews
	if q.BookID != "" {
		out = review.FilterByBook(out, q.BookID)
	}
	out = review.FilterByMinRating(out, q.MinRating)
	return review.SortBy(out, q.Sort), nil
}

func (s *Service) BookRating(_ context.Context, bookID string) (model.RatingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.catalog.Get(bookID); !ok {
		return model.RatingSummary{}, errors.Wrapf(errs.ErrNotFound, "book %s", bookID)
	}
	return review.Summary(s.reviews, bookID), nil
}
