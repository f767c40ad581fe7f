package service

import (
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/myshelf/shelf/internal/cart"
	"github.com/Astemirdum/myshelf/shelf/internal/catalog"
	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/feed"
	"github.com/Astemirdum/myshelf/shelf/internal/ledger"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/Astemirdum/myshelf/shelf/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Service owns the catalog and every user session. One mutex guards all of
// it; the domain packages underneath are not safe for concurrent use.
type Service struct {
	mu sync.Mutex

	log    *zap.Logger
	now    func() time.Time
	policy ledger.Policy
	events Publisher

	catalog   *catalog.Catalog
	reviews   []model.Review
	notices   []model.Notice
	faqs      []model.FAQ
	inquiries []model.Inquiry
	sessions  map[string]*session
}

var _ ledger.Stock = (*catalog.Catalog)(nil)

type session struct {
	cart   *cart.Cart
	ledger *ledger.Ledger
	feed   *feed.Feed
	// last badge a reminder was sent for, per rental
	reminded map[string]model.Badge
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithPolicy(p ledger.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

func NewService(ctx context.Context, repo repository.Repository, log *zap.Logger, opts ...Option) (*Service, error) {
	snap, err := repo.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	s := &Service{
		log:      log.Named("service"),
		now:      time.Now,
		policy:   ledger.DefaultPolicy(),
		events:   nopPublisher{},
		catalog:  catalog.New(snap.Books),
		reviews:  snap.Reviews,
		notices:  snap.Notices,
		faqs:     snap.FAQs,
		sessions: make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Info("catalog loaded",
		zap.Int("books", s.catalog.Len()),
		zap.Int("reviews", len(s.reviews)),
		zap.Int("notices", len(s.notices)))
	return s, nil
}

// session returns the user's session, creating it on first use.
// The caller holds s.mu.
func (s *Service) session(userName string) (*session, error) {
	if userName == "" {
		return nil, errs.ErrUserName
	}
	ss, ok := s.sessions[userName]
	if !ok {
		ss = &session{
			cart:     cart.New(s.now),
			ledger:   ledger.New(userName, s.catalog, s.policy, s.now),
			feed:     feed.New(s.now),
			reminded: make(map[string]model.Badge),
		}
		s.sessions[userName] = ss
		s.log.Debug("new session", zap.String("user", userName))
	}
	return ss, nil
}

func (s *Service) book(id string) *model.Book {
	b, ok := s.catalog.Get(id)
	if !ok {
		return nil
	}
	return &b
}
