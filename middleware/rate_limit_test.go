package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(10))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200 on request %d, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimitBlocksOverBudget(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(3))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	last := 0
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		last = w.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("Expected status 429 once the budget is exhausted, got %d", last)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	router := gin.New()
	router.Use(RateLimit(2))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Exhaust the first client's budget
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	// A different client is unaffected
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "10.0.0.4:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for a fresh client, got %d", w.Code)
	}
}
