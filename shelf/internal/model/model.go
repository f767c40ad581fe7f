package model

import (
	"strings"
	"time"
)

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time `json:",inline"`
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		return nil
	}
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

type Book struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Publisher       string  `json:"publisher"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	CoverImage      string  `json:"coverImage"`
	ISBN            string  `json:"isbn"`
	PublishedDate   Date    `json:"publishedDate"`
	Rating          float64 `json:"rating"`
	ReviewCount     int     `json:"reviewCount"`
	IsAvailable     bool    `json:"isAvailable"`
	TotalCopies     int     `json:"totalCopies"`
	AvailableCopies int     `json:"availableCopies"`
}

type Availability string

const (
	AvailabilityAll       Availability = "all"
	AvailabilityAvailable Availability = "available"
	AvailabilityBorrowed  Availability = "borrowed"
)

type BookSort string

const (
	BookSortTitle  BookSort = "title"
	BookSortAuthor BookSort = "author"
	BookSortRating BookSort = "rating"
	BookSortDate   BookSort = "date"
)

type BookQuery struct {
	Term         string       `query:"q"`
	Category     string       `query:"category"`
	Availability Availability `query:"availability" validate:"omitempty,oneof=all available borrowed"`
	MinRating    float64      `query:"minRating" validate:"gte=0,lte=5"`
	Sort         BookSort     `query:"sort" validate:"omitempty,oneof=title author rating date"`
}

type CartItem struct {
	BookID    string    `json:"bookId"`
	AddedDate time.Time `json:"addedDate"`
}

type CartEntry struct {
	CartItem `json:",inline"`
	Book     Book `json:"book"`
}

type CartView struct {
	Count int         `json:"count"`
	Items []CartEntry `json:"items"`
}

type RentalStatus string

const (
	StatusBorrowed RentalStatus = "borrowed"
	StatusOverdue  RentalStatus = "overdue"
	StatusReturned RentalStatus = "returned"
)

type Rental struct {
	ID           string       `json:"id"`
	BookID       string       `json:"bookId"`
	UserID       string       `json:"userId"`
	BorrowDate   Date         `json:"borrowDate"`
	DueDate      Date         `json:"dueDate"`
	ReturnDate   *Date        `json:"returnDate,omitempty"`
	Status       RentalStatus `json:"status"`
	RenewalCount int          `json:"renewalCount"`
	MaxRenewals  int          `json:"maxRenewals"`
}

type Badge string

const (
	BadgeActive   Badge = "active"
	BadgeDueSoon  Badge = "due_soon"
	BadgeOverdue  Badge = "overdue"
	BadgeReturned Badge = "returned"
)

// RentalView is a rental with its derived presentation fields.
type RentalView struct {
	Rental        `json:",inline"`
	Book          *Book `json:"book,omitempty"`
	DaysRemaining int   `json:"daysRemaining"`
	Badge         Badge `json:"badge"`
	LateFee       int   `json:"lateFee"`
}

type BorrowRequest struct {
	BookIDs    []string `json:"bookIds" validate:"required,min=1,dive,required"`
	PeriodDays int      `json:"periodDays" validate:"required,oneof=7 14 21 30"`
}

type CheckoutRequest struct {
	PeriodDays int `json:"periodDays" validate:"required,oneof=7 14 21 30"`
}

type BorrowFailure struct {
	BookID string `json:"bookId"`
	Reason string `json:"reason"`
}

type BorrowResult struct {
	Succeeded []RentalView    `json:"succeeded"`
	Failed    []BorrowFailure `json:"failed"`
}

type ShelfStats struct {
	Current  int `json:"current"`
	DueSoon  int `json:"dueSoon"`
	Overdue  int `json:"overdue"`
	Returned int `json:"returned"`
	LateFees int `json:"lateFees"`
}

type ShelfView struct {
	Current []RentalView `json:"current"`
	History []RentalView `json:"history"`
	Stats   ShelfStats   `json:"stats"`
}

type NotificationType string

const (
	NotificationDueSoon NotificationType = "due_soon"
	NotificationOverdue NotificationType = "overdue"
	NotificationNewBook NotificationType = "new_book"
	NotificationSystem  NotificationType = "system"
)

type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"`
	IsRead  bool             `json:"isRead"`
}

type NotificationFeed struct {
	Unread int            `json:"unread"`
	Items  []Notification `json:"items"`
}

type Review struct {
	ID       string `json:"id"`
	BookID   string `json:"bookId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     Date   `json:"date"`
	Likes    int    `json:"likes"`
}

type ReviewSort string

const (
	ReviewSortLatest  ReviewSort = "latest"
	ReviewSortHelpful ReviewSort = "helpful"
	ReviewSortRating  ReviewSort = "rating"
)

type ReviewQuery struct {
	BookID string `query:"bookId"`
	// MinRating 0 means every rating.
	MinRating int        `query:"minRating" validate:"gte=0,lte=5"`
	Sort      ReviewSort `query:"sort" validate:"omitempty,oneof=latest helpful rating"`
}

type RatingSummary struct {
	BookID        string      `json:"bookId"`
	Count         int         `json:"count"`
	AverageRating *float64    `json:"averageRating"`
	Distribution  map[int]int `json:"distribution"`
}

type NoticeType string

const (
	NoticeSystem      NoticeType = "system"
	NoticeEvent       NoticeType = "event"
	NoticeMaintenance NoticeType = "maintenance"
)

type Notice struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Date        Date       `json:"date"`
	Type        NoticeType `json:"type"`
	IsImportant bool       `json:"isImportant"`
}

type NoticeQuery struct {
	Type string `query:"type" validate:"omitempty,oneof=all system event maintenance"`
	Term string `query:"q"`
}

type NoticeList struct {
	Counts map[string]int `json:"counts"`
	Items  []Notice       `json:"items"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type InquiryRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"required,oneof=general rental account technical suggestion"`
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type Inquiry struct {
	ID             string `json:"id"`
	InquiryRequest `json:",inline"`
	CreatedAt      time.Time `json:"createdAt"`
}

type HomeView struct {
	Recommended []Book   `json:"recommended"`
	NewArrivals []Book   `json:"newArrivals"`
	Notices     []Notice `json:"notices"`
}
