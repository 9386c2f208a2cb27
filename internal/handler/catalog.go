// Package handler exposes the public HTTP endpoints: JSON search and lookup
// APIs plus the rendered listing and seat-map pages.  Handlers parse and
// validate parameters, call the catalog under a query timeout and map
// failures onto 400, 404 or 500 responses.
package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-seating/internal/model"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/service"
)

// Catalog is the read API the handlers depend on.
type Catalog interface {
	SearchEvents(ctx context.Context, p service.EventSearchParams) (*service.EventSearchResult, error)
	ListEvents(ctx context.Context, p service.ListParams) (*service.EventPage, error)
	SearchAttendees(ctx context.Context, p service.AttendeeSearchParams) (*service.AttendeeSearchResult, error)
	EventDetail(ctx context.Context, id uint64) (*service.EventOverview, error)
	EventStatistics(ctx context.Context, id uint64) (*service.EventStatistics, error)
	MapData(ctx context.Context, id uint64) (*model.Event, error)
	SeatMap(ctx context.Context, id uint64) (*service.SeatMap, error)
	SeatInfo(ctx context.Context, id uint64) (*repository.SeatDetail, error)
}

// DefaultTimeout bounds store access per request when none is configured.
const DefaultTimeout = 5 * time.Second

// CatalogHandler serves every public catalog route.
type CatalogHandler struct {
	Catalog  Catalog       // read operations
	MediaURL string        // prefix of stored seat-map images
	Timeout  time.Duration // per-request store timeout
}

// NewCatalogHandler wires a handler; a non-positive timeout uses DefaultTimeout.
func NewCatalogHandler(cat Catalog, mediaURL string, timeout time.Duration) *CatalogHandler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CatalogHandler{Catalog: cat, MediaURL: mediaURL, Timeout: timeout}
}

func (h *CatalogHandler) context(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), h.Timeout)
}

var errInvalidParam = errors.New("invalid parameter")

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidParam
	}
	return id, nil
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidParam
	}
	return n, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrEventNotFound) || errors.Is(err, repository.ErrSeatNotFound)
}
