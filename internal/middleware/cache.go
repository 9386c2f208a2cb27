package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-seating/internal/config"
)

// TagFunc names the invalidation tags a cached response belongs to.
type TagFunc func(c echo.Context) []string

// EventTag tags a response with the event id taken from the :id path param.
func EventTag(c echo.Context) []string {
	if id := c.Param("id"); id != "" {
		return []string{EventTagName(id)}
	}
	return nil
}

// EventTagName is the tag shared by every cached response of one event.
func EventTagName(eventID string) string {
	return "event:" + eventID
}

// captureWriter captures response body/status while forwarding to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 {
		cw.buf.Write(b)
	} else if remain := cw.limit - cw.size; remain > 0 {
		if int64(len(b)) <= remain {
			cw.buf.Write(b)
		} else {
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// CacheKey builds a stable cache key honoring prefix/strategy.  The request
// path, not the route pattern, identifies the resource.
func CacheKey(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	path := r.URL.Path
	query := r.URL.RawQuery

	parts := []string{cfg.Prefix}
	switch strings.ToLower(cfg.KeyStrategy) {
	case "route":
		parts = append(parts, "route", path)
	case "method_route":
		parts = append(parts, "method", r.Method, "route", path)
	case "method_route_query":
		parts = append(parts, "method", r.Method, "route", path, "q", query)
	default: // "route_query"
		parts = append(parts, "route", path, "q", query)
	}

	tail := strings.Join(parts[1:], ":")
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", parts[0], sum[:])
}

// cachedHeaders are the representation headers an entry keeps.  Request ids,
// rate limit counters and the X-Cache marker belong to a single request.
var cachedHeaders = []string{
	echo.HeaderContentType,
	echo.HeaderContentEncoding,
	"Content-Language",
	echo.HeaderVary,
}

func representationHeaders(h http.Header) http.Header {
	out := make(http.Header, len(cachedHeaders))
	for _, k := range cachedHeaders {
		if vals := h.Values(k); len(vals) > 0 {
			out[k] = append([]string(nil), vals...)
		}
	}
	return out
}

func tagKey(cfg config.CacheConfig, tag string) string {
	return cfg.Prefix + ":tag:" + tag
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:8+len(hdrJSON)], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	hdr := make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &hdr); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, hdr, bs[8+hlen:], true
}

// NewRedisCache caches successful responses in Redis for ttl (cfg.TTL when
// ttl is 0).  Stored entries keep the body and its representation headers;
// per-request headers set by earlier middleware are never replayed.  When tags is set, each entry's key is added to
// one Redis set per tag so InvalidateTags can drop them together.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client, ttl time.Duration, tags TagFunc) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if ttl <= 0 {
		ttl = cfg.TTL
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}

			ctx := c.Request().Context()
			key := CacheKey(cfg, c)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				if status, hdr, body, ok := decodePayload(bs); ok {
					for k, vals := range representationHeaders(hdr) {
						c.Response().Header()[k] = vals
					}
					c.Response().Header().Set("X-Cache", "HIT")
					cacheResults.WithLabelValues("hit").Inc()
					c.Response().WriteHeader(status)
					if len(body) > 0 {
						_, _ = c.Response().Write(body)
					}
					return nil
				}
			}

			cacheResults.WithLabelValues("miss").Inc()
			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status != http.StatusOK || (maxBody > 0 && cw.size > maxBody) {
				return nil
			}

			hdr := representationHeaders(c.Response().Header())
			payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes())
			if err != nil {
				return nil
			}
			store := context.Background()
			if err := rdb.SetEx(store, key, payload, ttl).Err(); err != nil {
				c.Logger().Warnf("[cache] store key=%s: %v", key, err)
				return nil
			}
			if tags == nil {
				return nil
			}
			for _, tag := range tags(c) {
				tk := tagKey(cfg, tag)
				if err := rdb.SAdd(store, tk, key).Err(); err != nil {
					c.Logger().Warnf("[cache] tag %s: %v", tag, err)
					continue
				}
				// tag sets outlive their members by at most one ttl
				_ = rdb.Expire(store, tk, ttl).Err()
			}
			return nil
		}
	}
}

// InvalidateTags deletes every cached response registered under the tags
// and the tag sets themselves.  It returns the number of entries removed.
func InvalidateTags(ctx context.Context, rdb *redis.Client, cfg config.CacheConfig, tags ...string) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	var removed int64
	for _, tag := range tags {
		tk := tagKey(cfg, tag)
		keys, err := rdb.SMembers(ctx, tk).Result()
		if err != nil {
			return removed, fmt.Errorf("members of %s: %w", tk, err)
		}
		if len(keys) > 0 {
			n, err := rdb.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("delete entries of %s: %w", tk, err)
			}
			removed += n
		}
		if err := rdb.Del(ctx, tk).Err(); err != nil {
			return removed, fmt.Errorf("delete %s: %w", tk, err)
		}
	}
	return removed, nil
}
