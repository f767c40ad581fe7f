package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Notifications(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	feed, err := h.shelfSvc.Notifications(c.Request().Context(), user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, feed)
}

func (h *Handler) MarkRead(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	if err := h.shelfSvc.MarkRead(c.Request().Context(), user, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) MarkAllRead(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	if err := h.shelfSvc.MarkAllRead(c.Request().Context(), user); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ClearNotifications(c echo.Context) error {
	user, err := userName(c)
	if err != nil {
		return err
	}
	if err := h.shelfSvc.ClearNotifications(c.Request().Context(), user); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
