package repository

import (
	"context"
	"embed"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
)

// Snapshot is the read-only reference data the service starts from.
type Snapshot struct {
	Books   []model.Book
	Reviews []model.Review
	Notices []model.Notice
	FAQs    []model.FAQ
}

type Repository interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

//go:embed seed/*.json
var seedFiles embed.FS

type embedded struct {
	log *zap.Logger
}

// NewEmbedded serves the snapshot compiled into the binary.
func NewEmbedded(log *zap.Logger) *embedded {
	return &embedded{log: log.Named("repo")}
}

func (r *embedded) Snapshot(_ context.Context) (Snapshot, error) {
	var (
		s   Snapshot
		err error
	)
	if s.Books, err = readSeed[model.Book]("books.json"); err != nil {
		return Snapshot{}, err
	}
	if s.Reviews, err = readSeed[model.Review]("reviews.json"); err != nil {
		return Snapshot{}, err
	}
	if s.Notices, err = readSeed[model.Notice]("notices.json"); err != nil {
		return Snapshot{}, err
	}
	if s.FAQs, err = readSeed[model.FAQ]("faqs.json"); err != nil {
		return Snapshot{}, err
	}
	r.log.Debug("embedded snapshot",
		zap.Int("books", len(s.Books)),
		zap.Int("reviews", len(s.Reviews)),
		zap.Int("notices", len(s.Notices)),
		zap.Int("faqs", len(s.FAQs)))
	return s, nil
}

func readSeed[T any](name string) ([]T, error) {
	b, err := seedFiles.ReadFile("seed/" + name)
	if err != nil {
		return nil, errors.Wrapf(err, "read seed %s", name)
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, errors.Wrapf(err, "decode seed %s", name)
	}
	return items, nil
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

// NewRepository reads books, reviews and notices from Postgres. FAQs are
// always served from the embedded seed.
func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName   = `books`
	reviewsTableName = `reviews`
	noticesTableName = `notices`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type bookRow struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Author          string    `db:"author"`
	Publisher       string    `db:"publisher"`
	Category        string    `db:"category"`
	Description     string    `db:"description"`
	CoverImage      string    `db:"cover_image"`
	ISBN            string    `db:"isbn"`
	PublishedDate   time.Time `db:"published_date"`
	Rating          float64   `db:"rating"`
	ReviewCount     int       `db:"review_count"`
	TotalCopies     int       `db:"total_copies"`
	AvailableCopies int       `db:"available_copies"`
}

type reviewRow struct {
	ID       string    `db:"id"`
	BookID   string    `db:"book_id"`
	UserID   string    `db:"user_id"`
	UserName string    `db:"user_name"`
	Rating   int       `db:"rating"`
	Comment  string    `db:"comment"`
	Date     time.Time `db:"date"`
	Likes    int       `db:"likes"`
}

type noticeRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	Date        time.Time `db:"date"`
	Type        string    `db:"type"`
	IsImportant bool      `db:"is_important"`
}

func (r *repository) Snapshot(ctx context.Context) (Snapshot, error) {
	var (
		s   Snapshot
		err error
	)
	if s.Books, err = r.books(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.Reviews, err = r.reviews(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.Notices, err = r.notices(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.FAQs, err = readSeed[model.FAQ]("faqs.json"); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

func (r *repository) books(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "publisher", "category", "description", "cover_image",
		"isbn", "published_date", "rating", "review_count", "total_copies", "available_copies").
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := collect[bookRow](ctx, r, q, args)
	if err != nil {
		return nil, errors.Wrap(err, "books")
	}
	books := make([]model.Book, 0, len(rows))
	for _, b := range rows {
		books = append(books, model.Book{
			ID:              b.ID,
			Title:           b.Title,
			Author:          b.Author,
			Publisher:       b.Publisher,
			Category:        b.Category,
			Description:     b.Description,
			CoverImage:      b.CoverImage,
			ISBN:            b.ISBN,
			PublishedDate:   model.Date{Time: b.PublishedDate},
			Rating:          b.Rating,
			ReviewCount:     b.ReviewCount,
			TotalCopies:     b.TotalCopies,
			AvailableCopies: b.AvailableCopies,
		})
	}
	return books, nil
}

func (r *repository) reviews(ctx context.Context) ([]model.Review, error) {
	q, args, err := qb.Select("id", "book_id", "user_id", "user_name", "rating", "comment", "date", "likes").
		From(reviewsTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := collect[reviewRow](ctx, r, q, args)
	if err != nil {
		return nil, errors.Wrap(err, "reviews")
	}
	reviews := make([]model.Review, 0, len(rows))
	for _, rv := range rows {
		reviews = append(reviews, model.Review{
			ID:       rv.ID,
			BookID:   rv.BookID,
			UserID:   rv.UserID,
			UserName: rv.UserName,
			Rating:   rv.Rating,
			Comment:  rv.Comment,
			Date:     model.Date{Time: rv.Date},
			Likes:    rv.Likes,
		})
	}
	return reviews, nil
}

func (r *repository) notices(ctx context.Context) ([]model.Notice, error) {
	q, args, err := qb.Select("id", "title", "content", "date", "type", "is_important").
		From(noticesTableName).
		OrderBy("date desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := collect[noticeRow](ctx, r, q, args)
	if err != nil {
		return nil, errors.Wrap(err, "notices")
	}
	notices := make([]model.Notice, 0, len(rows))
	for _, n := range rows {
		notices = append(notices, model.Notice{
			ID:          n.ID,
			Title:       n.Title,
			Content:     n.Content,
			Date:        model.Date{Time: n.Date},
			Type:        model.NoticeType(n.Type),
			IsImportant: n.IsImportant,
		})
	}
	return notices, nil
}

func collect[T any](ctx context.Context, r *repository, q string, args []interface{}) ([]T, error) {
	r.log.Debug("snapshot query", zap.String("q", q), zap.Any("args", args))
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
			return nil, errors.Wrap(errs.ErrNotFound, pgErr.TableName)
		}
		return nil, err
	}
	defer rows.Close()
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}
