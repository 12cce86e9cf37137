package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pms/config"
	"pms/infras/otel/mocks"
	"pms/internal/handlers/health"

	"github.com/stretchr/testify/assert"
)

func healthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Health.MaxRetry = 3
	cfg.App.Health.RetryWaitMsec = 1

	return cfg
}

func TestHandler_Check(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		handler := health.NewWithProbes(healthConfig(), mocks.NewOtel(),
			health.Probe{Name: "database", Check: func(context.Context) error { return nil }},
			health.Probe{Name: "redis", Check: func(context.Context) error { return nil }},
		)

		rec := httptest.NewRecorder()
		handler.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"status":"up","checks":{"database":"up","redis":"up"}}}`, rec.Body.String())
	})

	t.Run("retries a flaky dependency", func(t *testing.T) {
		calls := 0
		handler := health.NewWithProbes(healthConfig(), mocks.NewOtel(),
			health.Probe{Name: "database", Check: func(context.Context) error {
				calls++
				if calls < 3 {
					return errors.New("connection refused")
				}

				return nil
			}},
		)

		report := handler.Probe(context.Background())

		assert.Equal(t, "up", report.Status)
		assert.Equal(t, 3, calls)
	})

	t.Run("down dependency is unhealthy", func(t *testing.T) {
		handler := health.NewWithProbes(healthConfig(), mocks.NewOtel(),
			health.Probe{Name: "database", Check: func(context.Context) error { return nil }},
			health.Probe{Name: "redis", Check: func(context.Context) error { return errors.New("timeout") }},
		)

		report := handler.Probe(context.Background())
		assert.Equal(t, map[string]string{"database": "up", "redis": "down"}, report.Checks)

		rec := httptest.NewRecorder()
		handler.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "SERVER UNHEALTHY")
	})
}
