package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newLimitedRouter(rl *RateLimiter, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set(CurrentUserIDKey, userID)
		}
	})
	r.POST("/", rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doPost(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Burst(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 2)
	r := newLimitedRouter(rl, 1)

	assert.Equal(t, http.StatusOK, doPost(r))
	assert.Equal(t, http.StatusOK, doPost(r))
	assert.Equal(t, http.StatusTooManyRequests, doPost(r))
}

func TestRateLimiter_SeparateUsers(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 1)

	assert.Equal(t, http.StatusOK, doPost(newLimitedRouter(rl, 1)))
	assert.Equal(t, http.StatusOK, doPost(newLimitedRouter(rl, 2)))
	assert.Equal(t, http.StatusTooManyRequests, doPost(newLimitedRouter(rl, 1)))
}

func TestRateLimiter_ForgetsIdleVisitors(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(rate.Every(24*time.Hour), 1)
	rl.now = func() time.Time { return now }

	r := newLimitedRouter(rl, 1)
	require.Equal(t, http.StatusOK, doPost(r))
	require.Equal(t, http.StatusTooManyRequests, doPost(r))

	now = now.Add(visitorTTL + time.Second)
	// посетитель 2 запускает чистку, посетитель 1 получает новый лимитер
	assert.Equal(t, http.StatusOK, doPost(newLimitedRouter(rl, 2)))
	assert.Len(t, rl.visitors, 1)
	assert.Equal(t, http.StatusOK, doPost(r))
}
