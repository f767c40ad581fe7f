package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"go.uber.org/zap"
)

func (s *Service) Notifications(_ context.Context, userName string) (model.NotificationFeed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return model.NotificationFeed{}, err
	}
	return model.NotificationFeed{Unread: ss.feed.Unread(), Items: ss.feed.List()}, nil
}

// MarkRead is a no-op for unknown ids.
func (s *Service) MarkRead(_ context.Context, userName, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return err
	}
	ss.feed.MarkRead(id)
	return nil
}

func (s *Service) MarkAllRead(_ context.Context, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return err
	}
	ss.feed.MarkAllRead()
	return nil
}

func (s *Service) ClearNotifications(_ context.Context, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, err := s.session(userName)
	if err != nil {
		return err
	}
	ss.feed.Clear()
	return nil
}

// Notify delivers an external notification to one user, or to every open
// session when the event names nobody.
func (s *Service) Notify(_ context.Context, ev kafka.EventNotification) error {
	n := model.Notification{
		Type:    notificationType(ev.Type),
		Title:   ev.Title,
		Message: ev.Message,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.UserName != "" {
		ss, err := s.session(ev.UserName)
		if err != nil {
			return err
		}
		ss.feed.Push(n)
		return nil
	}
	for _, ss := range s.sessions {
		ss.feed.Push(n)
	}
	s.log.Debug("broadcast", zap.String("title", n.Title), zap.Int("sessions", len(s.sessions)))
	return nil
}

func notificationType(t string) model.NotificationType {
	switch nt := model.NotificationType(t); nt {
	case model.NotificationDueSoon, model.NotificationOverdue, model.NotificationNewBook, model.NotificationSystem:
		return nt
	default:
		return model.NotificationSystem
	}
}

// Remind pushes a due_soon or overdue notification for every current rental
// whose badge changed since its last reminder. It returns how many were sent.
func (s *Service) Remind(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]string, 0, len(s.sessions))
	for u := range s.sessions {
		users = append(users, u)
	}
	sort.Strings(users)

	sent := 0
	for _, u := range users {
		ss := s.sessions[u]
		for _, r := range ss.ledger.Current() {
			v := s.view(ss, r)
			if v.Badge != model.BadgeDueSoon && v.Badge != model.BadgeOverdue {
				continue
			}
			if ss.reminded[r.ID] == v.Badge {
				continue
			}
			ss.reminded[r.ID] = v.Badge
			ss.feed.Push(reminder(v))
			sent++
		}
	}
	if sent > 0 {
		s.log.Info("reminders sent", zap.Int("count", sent))
	}
	return sent
}

func reminder(v model.RentalView) model.Notification {
	title := v.BookID
	if v.Book != nil {
		title = v.Book.Title
	}
	due := v.DueDate.Format(time.DateOnly)
	if v.Badge == model.BadgeOverdue {
		return model.Notification{
			Type:    model.NotificationOverdue,
			Title:   "Overdue rental",
			Message: fmt.Sprintf("%q was due on %s. Late fee so far: %d.", title, due, v.LateFee),
		}
	}
	return model.Notification{
		Type:    model.NotificationDueSoon,
		Title:   "Return due soon",
		Message: fmt.Sprintf("%q is due on %s (%d days left).", title, due, v.DaysRemaining),
	}
}
