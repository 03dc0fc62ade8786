package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"hunthub/internal/cache"
)

func TestRateLimit_FailsOpenWithoutRedis(t *testing.T) {
	e := echo.New()
	e.GET("/limited", okHandler, RateLimit((*cache.Client)(nil), 1, time.Minute))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
