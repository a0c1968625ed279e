package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doGet(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.RemoteAddr = "203.0.113.9:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := gin.New()
	r.Use(middleware.NewRateLimiter(ctx, 1, 3).Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		if w := doGet(r); w.Code != http.StatusOK {
			t.Fatalf("request %d within burst rejected: %d", i+1, w.Code)
		}
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := gin.New()
	r.Use(middleware.NewRateLimiter(ctx, 1, 2).Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	doGet(r)
	doGet(r)

	if w := doGet(r); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 beyond burst, got %d", w.Code)
	}
}
