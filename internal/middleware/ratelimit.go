package middleware

import (
    "math"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/expo-event-management/internal/config"
)

// tokenBucketScript refills and drains a per-key bucket atomically inside
// Redis, so concurrent replicas never double-spend a token.  Bucket state
// lives in a hash of {tokens, last_refill_ms} with a TTL that outlives the
// refill cadence.  Returns {allowed, tokens_left, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
    local key = KEYS[1]
    local now_ms = tonumber(ARGV[1])
    local capacity = tonumber(ARGV[2])
    local refill = tonumber(ARGV[3])
    local interval_ms = tonumber(ARGV[4])
    local ttl_s = tonumber(ARGV[5])

    local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
    local tokens = tonumber(state[1])
    local last = tonumber(state[2])
    if tokens == nil or last == nil then
        tokens = capacity
        last = now_ms
    end

    if interval_ms > 0 and refill > 0 then
        local ticks = math.floor(math.max(0, now_ms - last) / interval_ms)
        if ticks > 0 then
            tokens = math.min(capacity, tokens + ticks * refill)
            last = last + ticks * interval_ms
        end
    end

    local allowed = 0
    local retry_ms = 0
    if tokens > 0 then
        allowed = 1
        tokens = tokens - 1
    else
        retry_ms = math.max(0, interval_ms - (now_ms - last))
    end

    redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last)
    redis.call('EXPIRE', key, ttl_s)
    return { allowed, tokens, retry_ms }
`)

// NewTokenBucket rate-limits requests with a Redis token bucket keyed by
// the configured strategy (client IP, account email, route, or a mix).
// When Redis is unavailable the middleware fails open: a booking that
// cannot be rate-checked is still a booking.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            key := buildRateKey(cfg, c)
            res, err := tokenBucketScript.Run(c.Request().Context(), rdb, []string{key},
                time.Now().UnixMilli(),
                cfg.Capacity,
                cfg.RefillTokens,
                cfg.RefillInterval.Milliseconds(),
                int64(cfg.TTL/time.Second),
            ).Result()
            if err != nil {
                if cfg.Debug {
                    c.Logger().Warnf("ratelimit: script failed for %s: %v", key, err)
                }
                return next(c)
            }

            arr, ok := res.([]interface{})
            if !ok || len(arr) != 3 {
                return next(c)
            }
            allowed := asInt64(arr[0]) == 1
            remaining := asInt64(arr[1])
            retryMs := asInt64(arr[2])

            h := c.Response().Header()
            h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
            h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
            if cfg.Debug {
                h.Set("X-RateLimit-Key", key)
            }

            if !allowed {
                secs := int(math.Ceil(float64(retryMs) / 1000.0))
                h.Set("Retry-After", strconv.Itoa(secs))
                return c.JSON(http.StatusTooManyRequests, echo.Map{
                    "error":       "too_many_requests",
                    "retry_after": secs,
                })
            }
            return next(c)
        }
    }
}

// asInt64 normalises the Lua script reply, which go-redis may surface as
// int64 or string depending on the value.
func asInt64(v interface{}) int64 {
    switch t := v.(type) {
    case int64:
        return t
    case string:
        if n, err := strconv.ParseInt(t, 10, 64); err == nil {
            return n
        }
    case float64:
        return int64(t)
    }
    return 0
}

func buildRateKey(cfg config.RateLimitConfig, c echo.Context) string {
    ip := c.RealIP()
    if ip == "" {
        ip = "unknown"
    }
    uid := userKey(c)
    route := c.Request().Method + " " + c.Path()

    parts := []string{cfg.Prefix}
    switch strings.ToLower(cfg.KeyStrategy) {
    case "ip":
        parts = append(parts, "ip", ip)
    case "user":
        parts = append(parts, "user", uid)
    case "route":
        parts = append(parts, "route", route)
    case "ip_user":
        parts = append(parts, "ip", ip, "user", uid)
    case "ip_route":
        parts = append(parts, "ip", ip, "route", route)
    case "user_route":
        parts = append(parts, "user", uid, "route", route)
    default:
        parts = append(parts, "ip", ip, "user", uid, "route", route)
    }
    return strings.Join(parts, ":")
}
