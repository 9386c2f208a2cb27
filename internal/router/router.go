package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-seating/internal/config"
	"github.com/iliyamo/event-seating/internal/handler"
	"github.com/iliyamo/event-seating/internal/middleware"
)

// Deps carries what RegisterRoutes wires together.  Redis may be nil, in
// which case caching and rate limiting are skipped.
type Deps struct {
	Catalog        *handler.CatalogHandler
	DB             handler.Pinger
	Redis          *redis.Client
	Cache          config.CacheConfig
	RateLimit      config.RateLimitConfig
	MetricsEnabled bool
}

// probe paths are served without the trailing slash redirect
var probes = map[string]bool{"/healthz": true, "/readyz": true, "/metrics": true}

// RegisterRoutes registers every public route on the provided Echo instance.
// Catalog paths end in a slash; requests without it are redirected.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.Pre(echomw.AddTrailingSlashWithConfig(echomw.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			return probes[c.Request().URL.Path]
		},
	}))

	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
	if d.DB != nil {
		e.GET("/readyz", handler.Ready(d.DB))
	}
	if d.MetricsEnabled {
		e.GET("/metrics", middleware.MetricsHandler())
	}

	h := d.Catalog
	detailCache := middleware.NewRedisCache(d.Cache, d.Redis, d.Cache.DetailTTL, middleware.EventTag)
	mapCache := middleware.NewRedisCache(d.Cache, d.Redis, d.Cache.MapTTL, middleware.EventTag)

	// rendered pages
	e.GET("/", h.Index)
	e.GET("/event/:id/map/", h.SeatMap, mapCache)

	// JSON API, rate limited per client
	limit := middleware.NewTokenBucket(d.RateLimit, d.Redis)
	api := e.Group("/api", limit)
	api.GET("/search/events/", h.SearchEvents)
	api.GET("/search/attendee/", h.SearchAttendees)
	api.GET("/events/:id/", h.EventDetail, detailCache)
	api.GET("/events/:id/statistics/", h.EventStatistics)
	api.GET("/events/:id/map-data/", h.MapData, mapCache)
	api.GET("/seats/:id/info/", h.SeatInfo)

	// legacy aliases
	e.GET("/search_attendee/", h.SearchAttendees, limit)
	e.GET("/seat/:id/info/", h.SeatInfo, limit)
}
