package handler

import (
	"net/http"
	"strconv"

	md "github.com/Astemirdum/myshelf/pkg/middleware"
	"github.com/Astemirdum/myshelf/pkg/validate"
	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	_ "github.com/Astemirdum/myshelf/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// queryBinder binds GET filters from the query string only, whatever the body.
var queryBinder = &echo.DefaultBinder{}

type Handler struct {
	shelfSvc ShelfService
	log      *zap.Logger
}

func New(shelfSvc ShelfService, log *zap.Logger) *Handler {
	return &Handler{
		shelfSvc: shelfSvc,
		log:      log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, md.XUserNameHeader},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/home", h.Home)
	api.GET("/categories", h.Categories)
	api.GET("/books", h.SearchBooks)
	api.GET("/books/top", h.TopRated)
	api.GET("/books/:bookId", h.GetBook)
	api.GET("/books/:bookId/rating", h.BookRating)
	api.GET("/reviews", h.Reviews)

	api.GET("/notices", h.Notices)
	api.GET("/faqs", h.FAQs)
	api.POST("/inquiries", h.SubmitInquiry)

	session := api.Group("", md.SessionUser)

	session.GET("/cart", h.Cart)
	session.POST("/cart/checkout", h.Checkout)
	session.POST("/cart/:bookId", h.AddToCart)
	session.DELETE("/cart/:bookId", h.RemoveFromCart)
	session.DELETE("/cart", h.ClearCart)

	session.POST("/rentals", h.Borrow)
	session.GET("/rentals", h.Shelf)
	session.POST("/rentals/:rentalId/renew", h.Renew)
	session.POST("/rentals/:rentalId/return", h.Return)

	session.GET("/notifications", h.Notifications)
	session.POST("/notifications/read", h.MarkAllRead)
	session.POST("/notifications/:id/read", h.MarkRead)
	session.DELETE("/notifications", h.ClearNotifications)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors onto status codes.
func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrRenewalLimitExceeded), errors.Is(err, errs.ErrRenewalOverdue):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUserName):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrEmptyCart), errors.Is(err, errs.ErrInvalidPeriod):
		code = http.StatusBadRequest
	}
	return echo.NewHTTPError(code, err.Error())
}

// @Summary home page: recommended books, new arrivals and latest notices
// @Tags catalog
// @Produce json
// @Success 200 {object} model.HomeView
// @Router /api/v1/home [get]
func (h *Handler) Home(c echo.Context) error {
	home, err := h.shelfSvc.Home(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, home)
}

func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.shelfSvc.Categories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// @Summary search the catalog
// @Tags catalog
// @Produce json
// @Param q query string false "title, author or publisher"
// @Param category query string false "category, all by default"
// @Param availability query string false "all, available or borrowed"
// @Param minRating query number false "minimum rating"
// @Param sort query string false "title, author, rating or date"
// @Success 200 {array} model.Book
// @Failure 400 {object} echo.HTTPError
// @Router /api/v1/books [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	var q model.BookQuery
	if err := queryBinder.BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	books, err := h.shelfSvc.SearchBooks(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) TopRated(c echo.Context) error {
	var (
		n   int
		err error
	)
	if nParam := c.QueryParam("n"); nParam != "" {
		if n, err = strconv.Atoi(nParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "n is invalid")
		}
	}
	books, err := h.shelfSvc.TopRated(c.Request().Context(), n)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// @Summary one book
// @Tags catalog
// @Produce json
// @Param bookId path string true "book id"
// @Success 200 {object} model.Book
// @Failure 404 {object} echo.HTTPError
// @Router /api/v1/books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.shelfSvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) BookRating(c echo.Context) error {
	summary, err := h.shelfSvc.BookRating(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) Reviews(c echo.Context) error {
	var q model.ReviewQuery
	if err := queryBinder.BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reviews, err := h.shelfSvc.Reviews(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *Handler) Notices(c echo.Context) error {
	var q model.NoticeQuery
	if err := queryBinder.BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, err := h.shelfSvc.Notices(c.Request().Context(), q)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) FAQs(c echo.Context) error {
	faqs, err := h.shelfSvc.FAQs(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, faqs)
}

// @Summary contact form
// @Tags support
// @Accept json
// @Produce json
// @Param request body model.InquiryRequest true "inquiry"
// @Success 201 {object} model.Inquiry
// @Failure 400 {object} echo.HTTPError
// @Router /api/v1/inquiries [post]
func (h *Handler) SubmitInquiry(c echo.Context) error {
	var req model.InquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inq, err := h.shelfSvc.SubmitInquiry(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, inq)
}
