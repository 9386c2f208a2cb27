package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-seating/internal/presenter"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/service"
)

const (
	indexTemplate   = "index.html"
	seatMapTemplate = "seat_map.html"
	errorTemplate   = "error.html"
)

type errorPage struct {
	Message string
}

func (h *CatalogHandler) renderError(c echo.Context, status int, msg string) error {
	return c.Render(status, errorTemplate, errorPage{Message: msg})
}

// Index renders the event listing page (GET /?search=&date_filter=&page=).
// Unparseable page numbers fall back to the first page.
func (h *CatalogHandler) Index(c echo.Context) error {
	search := strings.TrimSpace(c.QueryParam("search"))
	filter := repository.ParseDateFilter(c.QueryParam("date_filter"))
	page, err := strconv.Atoi(strings.TrimSpace(c.QueryParam("page")))
	if err != nil {
		page = 1
	}

	ctx, cancel := h.context(c)
	defer cancel()

	res, err := h.Catalog.ListEvents(ctx, service.ListParams{Search: search, DateFilter: filter, Page: page})
	if err != nil {
		c.Logger().Errorf("list events search=%q: %v", search, err)
		return h.renderError(c, http.StatusInternalServerError, "Events are unavailable right now")
	}
	return c.Render(http.StatusOK, indexTemplate, presenter.Index(res, search, filter))
}

// SeatMap renders the seat-map page of an active event (GET /event/:id/map/).
func (h *CatalogHandler) SeatMap(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.renderError(c, http.StatusNotFound, "Event not found or unavailable")
	}
	ctx, cancel := h.context(c)
	defer cancel()

	m, err := h.Catalog.SeatMap(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return h.renderError(c, http.StatusNotFound, "Event not found or unavailable")
		}
		c.Logger().Errorf("seat map id=%d: %v", id, err)
		return h.renderError(c, http.StatusInternalServerError, "Event not found or unavailable")
	}
	if m.Unplaced > 0 {
		c.Logger().Warnf("seat map id=%d: %d seats outside the image", id, m.Unplaced)
	}
	return c.Render(http.StatusOK, seatMapTemplate, presenter.SeatMap(m, h.MediaURL))
}
