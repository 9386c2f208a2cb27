package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-seating/internal/presenter"
)

func jsonError(c echo.Context, status int, msg string) error {
	return c.JSON(status, presenter.ErrorResponse{Error: msg})
}

// EventDetail handles GET /api/events/:id/.  Inactive events are not found.
func (h *CatalogHandler) EventDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid event ID")
	}
	ctx, cancel := h.context(c)
	defer cancel()

	ov, err := h.Catalog.EventDetail(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return jsonError(c, http.StatusNotFound, "Event not found")
		}
		c.Logger().Errorf("event detail id=%d: %v", id, err)
		return jsonError(c, http.StatusInternalServerError, "An error occurred")
	}
	return c.JSON(http.StatusOK, presenter.EventDetail(ov))
}

// EventStatistics handles GET /api/events/:id/statistics/.
func (h *CatalogHandler) EventStatistics(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid event ID")
	}
	ctx, cancel := h.context(c)
	defer cancel()

	st, err := h.Catalog.EventStatistics(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return jsonError(c, http.StatusNotFound, "Event not found or unavailable")
		}
		c.Logger().Errorf("event statistics id=%d: %v", id, err)
		return jsonError(c, http.StatusInternalServerError, "An error occurred")
	}
	return c.JSON(http.StatusOK, presenter.Statistics(st))
}

// MapData handles GET /api/events/:id/map-data/.
func (h *CatalogHandler) MapData(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid event ID")
	}
	ctx, cancel := h.context(c)
	defer cancel()

	ev, err := h.Catalog.MapData(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return jsonError(c, http.StatusNotFound, "Event not found or unavailable")
		}
		c.Logger().Errorf("map data id=%d: %v", id, err)
		return jsonError(c, http.StatusInternalServerError, "An error occurred")
	}
	return c.JSON(http.StatusOK, presenter.MapData(ev, h.MediaURL))
}

// SeatInfo handles GET /api/seats/:id/info/ and its legacy alias.
func (h *CatalogHandler) SeatInfo(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid seat ID")
	}
	ctx, cancel := h.context(c)
	defer cancel()

	d, err := h.Catalog.SeatInfo(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return jsonError(c, http.StatusNotFound, "Seat not found or unavailable")
		}
		c.Logger().Errorf("seat info id=%d: %v", id, err)
		return jsonError(c, http.StatusInternalServerError, "An error occurred")
	}
	return c.JSON(http.StatusOK, presenter.SeatInfo(d))
}
