package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/expo-event-management/internal/config"
	"github.com/iliyamo/expo-event-management/internal/utils"
)

func cacheTestConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
}

func newCacheBackend(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// The cache key carries no caller identity, so the middleware is only
// mounted on public browse routes.  This wires an app the way main does
// and checks that authenticated listings are never replayed across users
// while public responses are.
func TestResponseCacheScopedToPublicRoutes(t *testing.T) {
	rdb := newCacheBackend(t)
	e := echo.New()

	public := e.Group("/v1/venues", NewRedisCache(cacheTestConfig(), rdb))
	public.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "venue catalog")
	})

	authed := e.Group("/v1", JWTAuth(testSecret))
	authed.GET("/tickets", func(c echo.Context) error {
		return c.String(http.StatusOK, "tickets-of:"+c.Get("email").(string))
	})

	aliceTok, err := utils.NewAccessToken(testSecret, "alice@example.com", "ATTENDEE", 5)
	require.NoError(t, err)
	bobTok, err := utils.NewAccessToken(testSecret, "bob@example.com", "ATTENDEE", 5)
	require.NoError(t, err)

	get := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	// Each account sees its own listing; nothing is cached on this route.
	rec := get("/v1/tickets", aliceTok.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tickets-of:alice@example.com", rec.Body.String())

	rec = get("/v1/tickets", bobTok.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tickets-of:bob@example.com", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))

	// The public catalog is cached across anonymous callers.
	rec = get("/v1/venues", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	rec = get("/v1/venues", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "venue catalog", rec.Body.String())
}

func TestResponseCacheDisabledWithoutRedis(t *testing.T) {
	mw := NewRedisCache(cacheTestConfig(), nil)
	e := echo.New()
	e.GET("/v1/venues", func(c echo.Context) error {
		return c.String(http.StatusOK, "venue catalog")
	}, mw)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/venues", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Cache"))
	}
}
