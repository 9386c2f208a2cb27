package config

import (
	"strings"
	"time"
)

// CacheConfig configures the Redis response cache.  TTL applies to any
// cached route without its own lifetime; event detail responses live for
// DetailTTL and seat-map responses (page and map data) for MapTTL.  Entries of one event are dropped early when a
// catalog change message arrives.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool // upper-cased, usually just GET
	TTL          time.Duration
	DetailTTL    time.Duration
	MapTTL       time.Duration
	KeyStrategy  string // route, route_query, method_route, method_route_query
	Prefix       string
	MaxBodyBytes int // larger responses are served but not stored
}

// LoadCacheConfig reads CACHE_* variables.  Unparsable durations fall back to
// their defaults.
func LoadCacheConfig() CacheConfig {
	ttl := envDur("CACHE_TTL", 5*time.Minute)
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		Methods:      methodSet(envStr("CACHE_METHODS", "GET")),
		TTL:          ttl,
		DetailTTL:    envDur("CACHE_DETAIL_TTL", 2*time.Minute),
		MapTTL:       envDur("CACHE_MAP_TTL", ttl),
		KeyStrategy:  envStr("CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func methodSet(csv string) map[string]bool {
	set := make(map[string]bool)
	for _, m := range strings.Split(csv, ",") {
		if m = strings.ToUpper(strings.TrimSpace(m)); m != "" {
			set[m] = true
		}
	}
	return set
}
