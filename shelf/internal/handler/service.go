package handler

import (
	"context"

	"github.com/Astemirdum/myshelf/pkg/kafka"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/Astemirdum/myshelf/shelf/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ShelfService interface {
	// catalog and reviews
	Home(ctx context.Context) (model.HomeView, error)
	SearchBooks(ctx context.Context, q model.BookQuery) ([]model.Book, error)
	Categories(ctx context.Context) ([]string, error)
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	TopRated(ctx context.Context, n int) ([]model.Book, error)
	Reviews(ctx context.Context, q model.ReviewQuery) ([]model.Review, error)
	BookRating(ctx context.Context, bookID string) (model.RatingSummary, error)

	// cart and rentals
	Cart(ctx context.Context, userName string) (model.CartView, error)
	AddToCart(ctx context.Context, userName, bookID string) (model.CartView, error)
	RemoveFromCart(ctx context.Context, userName, bookID string) (model.CartView, error)
	ClearCart(ctx context.Context, userName string) error
	Checkout(ctx context.Context, userName string, periodDays int) (model.BorrowResult, error)
	Borrow(ctx context.Context, userName string, req model.BorrowRequest) (model.BorrowResult, error)
	Renew(ctx context.Context, userName, rentalID string) (model.RentalView, error)
	Return(ctx context.Context, userName, rentalID string) (model.RentalView, error)
	Shelf(ctx context.Context, userName string) (model.ShelfView, error)

	// notifications
	Notifications(ctx context.Context, userName string) (model.NotificationFeed, error)
	MarkRead(ctx context.Context, userName, id string) error
	MarkAllRead(ctx context.Context, userName string) error
	ClearNotifications(ctx context.Context, userName string) error
	Notify(ctx context.Context, ev kafka.EventNotification) error

	// support
	Notices(ctx context.Context, q model.NoticeQuery) (model.NoticeList, error)
	FAQs(ctx context.Context, category string) ([]model.FAQ, error)
	SubmitInquiry(ctx context.Context, req model.InquiryRequest) (model.Inquiry, error)
}

var _ ShelfService = (*service.Service)(nil)
