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

    "github.com/iliyamo/expo-event-management/internal/config"
)

// recorder tees the response to the client while keeping a bounded copy
// for the cache.  Bodies past the limit still reach the client but the
// stored entry is truncated, so oversized responses are simply not cached.
type recorder struct {
    http.ResponseWriter
    status  int
    buf     bytes.Buffer
    written int64
    limit   int64
}

func (r *recorder) WriteHeader(code int) {
    r.status = code
    r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
    if r.limit <= 0 {
        r.buf.Write(b)
    } else if remain := r.limit - r.written; remain > 0 {
        if int64(len(b)) <= remain {
            r.buf.Write(b)
        } else {
            r.buf.Write(b[:remain])
        }
    }
    r.written += int64(len(b))
    return r.ResponseWriter.Write(b)
}

// cacheKey hashes the request identity under the configured strategy.
// Venue layout responses vary by path and query only; identity never
// contributes, so all callers share one cached copy.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
    req := c.Request()
    var id string
    switch strings.ToLower(cfg.KeyStrategy) {
    case "route":
        id = c.Path()
    case "method_route":
        id = req.Method + ":" + c.Path()
    case "method_route_query":
        id = req.Method + ":" + c.Path() + "?" + req.URL.RawQuery
    default: // route_query
        id = c.Path() + "?" + req.URL.RawQuery
    }
    sum := sha1.Sum([]byte(id))
    return fmt.Sprintf("%s:%x", cfg.Prefix, sum)
}

// Cached entries pack status, header JSON and body into one value:
// [4B status][4B header length][header JSON][body].
func packEntry(status int, header http.Header, body []byte) ([]byte, error) {
    hdr, err := json.Marshal(header)
    if err != nil {
        return nil, err
    }
    out := make([]byte, 8+len(hdr)+len(body))
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    binary.BigEndian.PutUint32(out[4:8], uint32(len(hdr)))
    copy(out[8:], hdr)
    copy(out[8+len(hdr):], body)
    return out, nil
}

func unpackEntry(raw []byte) (status int, header http.Header, body []byte, ok bool) {
    if len(raw) < 8 {
        return 0, nil, nil, false
    }
    status = int(binary.BigEndian.Uint32(raw[0:4]))
    hlen := int(binary.BigEndian.Uint32(raw[4:8]))
    if hlen < 0 || 8+hlen > len(raw) {
        return 0, nil, nil, false
    }
    header = make(http.Header)
    if hlen > 0 {
        if err := json.Unmarshal(raw[8:8+hlen], &header); err != nil {
            return 0, nil, nil, false
        }
    }
    return status, header, raw[8+hlen:], true
}

// NewRedisCache caches successful responses for the configured methods,
// replaying status, headers and body on a hit.  A nil Redis client or a
// disabled config yields a pass-through middleware, so the public venue
// routes keep serving straight from the flat files when Redis is absent.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 5 * time.Minute
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }

            key := cacheKey(cfg, c)
            if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
                if status, hdr, body, ok := unpackEntry(raw); ok {
                    for k, vals := range hdr {
                        if strings.EqualFold(k, "Content-Length") {
                            continue
                        }
                        for _, v := range vals {
                            c.Response().Header().Add(k, v)
                        }
                    }
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(status)
                    _, werr := c.Response().Write(body)
                    return werr
                }
            }

            rec := &recorder{
                ResponseWriter: c.Response().Writer,
                status:         http.StatusOK,
                limit:          int64(cfg.MaxBodyBytes),
            }
            c.Response().Writer = rec
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            // Only 200s are worth replaying; errors should re-run the
            // handler next time.
            if rec.status == http.StatusOK && (rec.limit <= 0 || rec.written <= rec.limit) {
                hdr := make(http.Header, len(c.Response().Header()))
                for k, vals := range c.Response().Header() {
                    hdr[k] = append([]string(nil), vals...)
                }
                if entry, err := packEntry(rec.status, hdr, rec.buf.Bytes()); err == nil {
                    _ = rdb.SetEx(context.Background(), key, entry, ttl).Err()
                }
            }
            return nil
        }
    }
}
