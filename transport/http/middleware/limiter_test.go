package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pms/config"
	"pms/shared/cache/mocks"
	"pms/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		count         int64
		err           error
		wantStatus    int
		wantRemaining string
		wantRetry     string
	}{
		{name: "within limit", count: 1, wantStatus: http.StatusOK, wantRemaining: "1"},
		{name: "at limit", count: 2, wantStatus: http.StatusOK, wantRemaining: "0"},
		{name: "over limit", count: 3, wantStatus: http.StatusTooManyRequests, wantRemaining: "0", wantRetry: "42"},
		{name: "cache down fails open", err: errors.New("connection refused"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cacheMock := mocks.NewMockRedisCache(ctrl)

			cacheMock.EXPECT().
				Increment(gomock.Any(), "limiter:10.0.0.7:curl", time.Minute).
				Return(tt.count, 41500*time.Millisecond, tt.err)

			limited := middleware.NewAppMiddleware(nil, limiterConfig(), cacheMock).RateLimit()(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
			)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			req.RemoteAddr = "10.0.0.7:51234"
			req.Header.Set("User-Agent", "curl")

			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.wantRetry, rec.Header().Get("Retry-After"))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheMock := mocks.NewMockRedisCache(ctrl)

	cfg := limiterConfig()
	cfg.App.RateLimiter.Enable = false

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	middleware.NewAppMiddleware(nil, cfg, cacheMock).RateLimit()(next).ServeHTTP(
		httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/rooms", nil),
	)

	assert.True(t, called)
}
