package handler

import (
	"net/http"

	md "github.com/Astemirdum/myshelf/pkg/middleware"
	"github.com/Astemirdum/myshelf/shelf/internal/errs"
	"github.com/Astemirdum/myshelf/shelf/internal/model"
	"github.com/labstack/echo/v4"
)

func userName(c echo.Context) (string, error) {
	name, ok := md.UserName(c.Request().Context())
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errs.ErrUserName.Error())
	}
	return name, nil
}

func (h *Handler) Cart(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	view, err := h.shelfSvc.Cart(c.Request().Context(), user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) AddToCart(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	view, err := h.shelfSvc.AddToCart(c.Request().Context(), user, c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) RemoveFromCart(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	view, err := h.shelfSvc.RemoveFromCart(c.Request().Context(), user, c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) ClearCart(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	if err := h.shelfSvc.ClearCart(c.Request().Context(), user); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary rent every book in the cart
// @Tags rentals
// @Accept json
// @Produce json
// @Param X-User-Name header string true "user name"
// @Param request body model.CheckoutRequest true "rental period"
// @Success 200 {object} model.BorrowResult
// @Failure 400 {object} echo.HTTPError
// @Router /api/v1/cart/checkout [post]
func (h *Handler) Checkout(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	var req model.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.shelfSvc.Checkout(c.Request().Context(), user, req.PeriodDays)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary borrow books
// @Tags rentals
// @Accept json
// @Produce json
// @Param X-User-Name header string true "user name"
// @Param request body model.BorrowRequest true "books and rental period"
// @Success 200 {object} model.BorrowResult
// @Failure 400 {object} echo.HTTPError
// @Router /api/v1/rentals [post]
func (h *Handler) Borrow(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.shelfSvc.Borrow(c.Request().Context(), user, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary my shelf: current rentals, history and stats
// @Tags rentals
// @Produce json
// @Param X-User-Name header string true "user name"
// @Success 200 {object} model.ShelfView
// @Router /api/v1/rentals [get]
func (h *Handler) Shelf(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	shelf, err := h.shelfSvc.Shelf(c.Request().Context(), user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, shelf)
}

// @Summary renew a rental
// @Tags rentals
// @Produce json
// @Param X-User-Name header string true "user name"
// @Param rentalId path string true "rental id"
// @Success 200 {object} model.RentalView
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /api/v1/rentals/{rentalId}/renew [post]
func (h *Handler) Renew(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	v, err := h.shelfSvc.Renew(c.Request().Context(), user, c.Param("rentalId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) Return(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	v, err := h.shelfSvc.Return(c.Request().Context(), user, c.Param("rentalId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, v)
}
