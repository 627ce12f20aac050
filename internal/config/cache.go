package config

import (
    "strings"
    "time"
)

// CacheConfig controls the Redis response cache that sits in front of the
// public venue endpoints.  Layout and session listings are read far more
// often than they change, so short-TTL caching of GET responses cuts repeat
// file loads.  KeyStrategy selects which request parts form the cache key;
// responses larger than MaxBodyBytes are served but never stored.
type CacheConfig struct {
    Enabled      bool
    Methods      map[string]bool
    TTL          time.Duration
    KeyStrategy  string
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from CACHE_* environment variables,
// falling back to defaults that cache GET responses for thirty seconds.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        Methods:      methodSet(envStr("CACHE_METHODS", "GET")),
        TTL:          envDur("CACHE_TTL", 30*time.Second),
        KeyStrategy:  envStr("CACHE_KEY_STRATEGY", "route_query"),
        Prefix:       envStr("CACHE_PREFIX", "cache"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
    }
}

// methodSet parses a comma-separated method list into an upper-cased set.
func methodSet(s string) map[string]bool {
    set := make(map[string]bool)
    for _, m := range strings.Split(s, ",") {
        if m = strings.ToUpper(strings.TrimSpace(m)); m != "" {
            set[m] = true
        }
    }
    return set
}
