package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(t *testing.T, maxRequests int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(client, maxRequests, window))
	router.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, mr
}

func doLogin(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_RejectsOverThreshold(t *testing.T) {
	router, _ := newRateLimitedRouter(t, 2, time.Minute)

	assert.Equal(t, http.StatusOK, doLogin(router).Code)
	assert.Equal(t, http.StatusOK, doLogin(router).Code)

	w := doLogin(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimit_WindowExpiryResetsCounter(t *testing.T) {
	router, mr := newRateLimitedRouter(t, 1, time.Minute)

	assert.Equal(t, http.StatusOK, doLogin(router).Code)
	assert.Equal(t, http.StatusTooManyRequests, doLogin(router).Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, doLogin(router).Code)
}

func TestRateLimit_RedisDown_Returns500(t *testing.T) {
	router, mr := newRateLimitedRouter(t, 2, time.Minute)
	mr.Close()

	w := doLogin(router)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limiting error")
}

func TestRateLimit_PanicsOnInvalidArguments(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	assert.Panics(t, func() { RateLimit(nil, 1, time.Minute) })
	assert.Panics(t, func() { RateLimit(client, 0, time.Minute) })
	assert.Panics(t, func() { RateLimit(client, 1, 0) })
}
