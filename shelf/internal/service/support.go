package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const noticeAll = "all"

// Notices filters by type and a case-insensitive term over title and content,
// newest first. Counts are per type over the whole list.
func (s *Service) Notices(_ context.Context, q model.NoticeQuery) (model.NoticeList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int{
		noticeAll:                       len(s.notices),
		string(model.NoticeSystem):      0,
		string(model.NoticeEvent):       0,
		string(model.NoticeMaintenance): 0,
	}
	term := strings.ToLower(strings.TrimSpace(q.Term))
	items := make([]model.Notice, 0, len(s.notices))
	for _, n := range s.notices {
		counts[string(n.Type)]++
		if q.Type != "" && q.Type != noticeAll && string(n.Type) != q.Type {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(n.Title), term) &&
			!strings.Contains(strings.ToLower(n.Content), term) {
			continue
		}
		items = append(items, n)
	}
	sortNotices(items)
	return model.NoticeList{Counts: counts, Items: items}, nil
}

// latestNotices runs under s.mu.
func (s *Service) latestNotices(n int) []model.Notice {
	items := append([]model.Notice(nil), s.notices...)
	sortNotices(items)
	if n >= 0 && n < len(items) {
		items = items[:n]
	}
	return items
}

func sortNotices(items []model.Notice) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date.Time)
	})
}

func (s *Service) FAQs(_ context.Context, category string) ([]model.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.FAQ, 0, len(s.faqs))
	for _, f := range s.faqs {
		if category == "" || category == noticeAll || f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}

// SubmitInquiry records a contact form. The request is validated by the caller.
func (s *Service) SubmitInquiry(_ context.Context, req model.InquiryRequest) (model.Inquiry, error) {
	inq := model.Inquiry{
		ID:             uuid.NewString(),
		InquiryRequest: req,
		CreatedAt:      s.now(),
	}
	s.mu.Lock()
	s.inquiries = append(s.inquiries, inq)
	s.mu.Unlock()
	s.log.Info("inquiry received", zap.String("id", inq.ID), zap.String("category", req.Category))
	return inq, nil
}
