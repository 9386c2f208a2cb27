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

// SearchEvents handles GET /api/search/events/?q=&date_filter=&limit=.
func (h *CatalogHandler) SearchEvents(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	filter := repository.ParseDateFilter(c.QueryParam("date_filter"))
	// the response echoes what was asked for, even when it narrows nothing
	echoed := strings.TrimSpace(c.QueryParam("date_filter"))
	if echoed == "" {
		echoed = string(filter)
	}
	fail := func(status int, msg string) error {
		return c.JSON(status, presenter.EventSearchResponse{
			Results:    []presenter.EventResult{},
			Query:      query,
			DateFilter: echoed,
			Error:      msg,
		})
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		c.Logger().Warnf("search events: invalid limit %q", c.QueryParam("limit"))
		return fail(http.StatusBadRequest, "Invalid search parameters")
	}

	ctx, cancel := h.context(c)
	defer cancel()

	res, err := h.Catalog.SearchEvents(ctx, service.EventSearchParams{Query: query, DateFilter: filter, Limit: limit})
	if err != nil {
		c.Logger().Errorf("search events q=%q: %v", query, err)
		return fail(http.StatusInternalServerError, "An error occurred while searching events")
	}
	body := presenter.EventSearch(res)
	body.DateFilter = echoed
	return c.JSON(http.StatusOK, body)
}

// SearchAttendees handles GET /api/search/attendee/?q=&event_id=&limit=.
// Queries shorter than two characters get an explicit empty result.
func (h *CatalogHandler) SearchAttendees(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))

	limit, err := queryInt(c, "limit")
	if err != nil {
		return c.JSON(http.StatusBadRequest, presenter.AttendeeSearchResponse{
			Results: []presenter.AttendeeResult{},
			Query:   query,
			Error:   "Invalid search parameters",
		})
	}
	if len([]rune(query)) < service.MinQueryLength {
		return c.JSON(http.StatusOK, presenter.AttendeeSearch(&service.AttendeeSearchResult{TooShort: true, Query: query}))
	}

	var eventID *uint64
	if raw := strings.TrimSpace(c.QueryParam("event_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, presenter.AttendeeSearchResponse{
				Results: []presenter.AttendeeResult{},
				Message: "Invalid event ID",
				Error:   "Invalid event ID",
			})
		}
		eventID = &id
	}

	ctx, cancel := h.context(c)
	defer cancel()

	res, err := h.Catalog.SearchAttendees(ctx, service.AttendeeSearchParams{Query: query, EventID: eventID, Limit: limit})
	if err != nil {
		c.Logger().Errorf("search attendees q=%q: %v", query, err)
		return c.JSON(http.StatusInternalServerError, presenter.AttendeeSearchResponse{
			Results: []presenter.AttendeeResult{},
			Query:   query,
			Error:   "An error occurred while searching attendees",
		})
	}
	return c.JSON(http.StatusOK, presenter.AttendeeSearch(res))
}
