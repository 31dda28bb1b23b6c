package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffing_service/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Silence()
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	return w
}

func TestRateLimit(t *testing.T) {
	r := newRouter(RateLimit(2, time.Minute))

	first := get(r)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, get(r).Code)

	third := get(r)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.JSONEq(t, `{"code":"TOO_MANY_REQUESTS","message":"Too many requests, try again later"}`, third.Body.String())
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newRouter(RateLimit(0, time.Minute))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(r).Code)
	}
}

func TestRequestLogger(t *testing.T) {
	r := newRouter(RequestLogger())
	assert.Equal(t, http.StatusOK, get(r).Code)
}
