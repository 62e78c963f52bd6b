package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var handlerCalls int64

	router := gin.New()
	router.Use(Idempotency(DefaultIdempotencyConfig()))
	router.POST("/feedback", func(c *gin.Context) {
		n := atomic.AddInt64(&handlerCalls, 1)
		c.JSON(http.StatusCreated, gin.H{"call": n})
	})

	send := func(key, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(body))
		if key != "" {
			req.Header.Set(IdempotencyKeyHeader, key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("replays the cached response for a repeated key", func(t *testing.T) {
		first := send("verdict-abc", `{"fits":true}`)
		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Empty(t, first.Header().Get("X-Idempotency-Replayed"))

		second := send("verdict-abc", `{"fits":true}`)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, int64(1), atomic.LoadInt64(&handlerCalls))
	})

	t.Run("different bodies under the same key are distinct requests", func(t *testing.T) {
		before := atomic.LoadInt64(&handlerCalls)
		send("verdict-abc", `{"fits":false}`)
		assert.Equal(t, before+1, atomic.LoadInt64(&handlerCalls))
	})

	t.Run("requests without a key are never cached", func(t *testing.T) {
		before := atomic.LoadInt64(&handlerCalls)
		send("", `{"fits":true}`)
		send("", `{"fits":true}`)
		assert.Equal(t, before+2, atomic.LoadInt64(&handlerCalls))
	})
}

func TestIdempotency_IgnoresReadMethods(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var handlerCalls int64

	router := gin.New()
	router.Use(Idempotency(DefaultIdempotencyConfig()))
	router.GET("/boxes", func(c *gin.Context) {
		atomic.AddInt64(&handlerCalls, 1)
		c.JSON(http.StatusOK, gin.H{})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/boxes", nil)
		req.Header.Set(IdempotencyKeyHeader, "list-key")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, int64(2), atomic.LoadInt64(&handlerCalls))
}

func TestIdempotency_DoesNotCacheFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var handlerCalls int64

	router := gin.New()
	router.Use(Idempotency(DefaultIdempotencyConfig()))
	router.POST("/feedback", func(c *gin.Context) {
		atomic.AddInt64(&handlerCalls, 1)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(`{}`))
		req.Header.Set(IdempotencyKeyHeader, "bad-verdict")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
	}

	assert.Equal(t, int64(2), atomic.LoadInt64(&handlerCalls))
}

func TestIdempotency_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var handlerCalls int64

	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{Enabled: false}))
	router.POST("/feedback", func(c *gin.Context) {
		atomic.AddInt64(&handlerCalls, 1)
		c.JSON(http.StatusCreated, gin.H{})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(`{}`))
		req.Header.Set(IdempotencyKeyHeader, "same-key")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, int64(2), atomic.LoadInt64(&handlerCalls))
}

func TestGenerateCacheKey(t *testing.T) {
	newReq := func(method, path, body string) *http.Request {
		return httptest.NewRequest(method, path, strings.NewReader(body))
	}

	keyA := generateCacheKey("k1", newReq(http.MethodPost, "/feedback", `{"a":1}`))
	keyB := generateCacheKey("k1", newReq(http.MethodPost, "/feedback", `{"a":1}`))
	assert.Equal(t, keyA, keyB, "identical requests must hash identically")

	keyC := generateCacheKey("k2", newReq(http.MethodPost, "/feedback", `{"a":1}`))
	assert.NotEqual(t, keyA, keyC, "key changes the hash")

	keyD := generateCacheKey("k1", newReq(http.MethodPost, "/boxes", `{"a":1}`))
	assert.NotEqual(t, keyA, keyD, "path changes the hash")
}
