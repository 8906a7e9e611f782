package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// newIdempotencyRouter wires the middleware behind a stub auth layer the
// way the app router does: identity first, then the idempotency cache.
func newIdempotencyRouter(t *testing.T, calls *int) *gin.Engine {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if biz := c.GetHeader("X-Test-Business"); biz != "" {
			c.Set(ContextBusinessID, biz)
		}
		c.Next()
	})
	router.Use(IdempotencyMiddleware(client))
	router.POST("/close", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{"business": BusinessID(c)})
	})

	return router
}

func doClose(router *gin.Engine, businessID, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/close", strings.NewReader("{}"))
	if businessID != "" {
		req.Header.Set("X-Test-Business", businessID)
	}
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysRepeatedKey(t *testing.T) {
	var calls int
	router := newIdempotencyRouter(t, &calls)

	first := doClose(router, "biz-1", "close-2026-08-29")
	second := doClose(router, "biz-1", "close-2026-08-29")

	if calls != 1 {
		t.Errorf("expected handler to run once, ran %d times", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("expected replayed body %q, got %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_KeysDoNotCrossBusinesses(t *testing.T) {
	var calls int
	router := newIdempotencyRouter(t, &calls)

	first := doClose(router, "biz-a", "close-2026-08-29")
	second := doClose(router, "biz-b", "close-2026-08-29")

	if calls != 2 {
		t.Errorf("expected handler to run for both businesses, ran %d times", calls)
	}
	if !strings.Contains(first.Body.String(), "biz-a") {
		t.Errorf("unexpected first body %q", first.Body.String())
	}
	if !strings.Contains(second.Body.String(), "biz-b") {
		t.Errorf("second business received %q, expected its own response", second.Body.String())
	}
}

func TestIdempotency_SkipsWithoutIdentity(t *testing.T) {
	var calls int
	router := newIdempotencyRouter(t, &calls)

	doClose(router, "", "close-2026-08-29")
	doClose(router, "", "close-2026-08-29")

	if calls != 2 {
		t.Errorf("expected no caching without an authenticated business, handler ran %d times", calls)
	}
}

func TestIdempotency_IgnoresReadRequests(t *testing.T) {
	var calls int
	router := newIdempotencyRouter(t, &calls)
	router.GET("/list", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/list", nil)
		req.Header.Set("X-Test-Business", "biz-1")
		req.Header.Set("Idempotency-Key", "list-key")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
	}

	if calls != 2 {
		t.Errorf("expected GET requests to bypass the cache, handler ran %d times", calls)
	}
}
