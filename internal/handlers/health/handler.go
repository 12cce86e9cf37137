package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pms/config"
	"pms/infras/database"
	"pms/infras/otel"
	"pms/shared/constant"
	"pms/transport/http/response"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	statusUp   = "up"
	statusDown = "down"
)

// Probe checks one dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	cfg    *config.Config
	otel   otel.Otel
	probes []Probe
}

func New(db *database.Connection, redis *goRedis.Client, cfg *config.Config, otel otel.Otel) Handler {
	return NewWithProbes(cfg, otel,
		Probe{Name: "database", Check: func(ctx context.Context) error { return db.Write.PingContext(ctx) }},
		Probe{Name: "redis", Check: func(ctx context.Context) error { return redis.Ping(ctx).Err() }},
	)
}

func NewWithProbes(cfg *config.Config, otel otel.Otel, probes ...Probe) Handler {
	return Handler{
		cfg:    cfg,
		otel:   otel,
		probes: probes,
	}
}

// Check godoc
// @Summary Service health
// @Description Probes the database and redis. Responds 503 when a dependency is down or the server is draining.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Report]
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health.Check")
	defer scope.End()

	report := handler.Probe(ctx)

	if report.Status != statusUp {
		scope.TraceError(fmt.Errorf("unhealthy: %v", report.Checks))
		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// Probe runs every probe, retrying each one before declaring it down.
func (handler Handler) Probe(ctx context.Context) Report {
	report := Report{Status: statusUp, Checks: make(map[string]string, len(handler.probes))}

	attempts := max(handler.cfg.App.Health.MaxRetry, 1)
	wait := time.Duration(handler.cfg.App.Health.RetryWaitMsec) * time.Millisecond

	for _, probe := range handler.probes {
		var err error

		for attempt := 1; attempt <= attempts; attempt++ {
			if err = probe.Check(ctx); err == nil {
				break
			}

			log.Warn().Err(err).Str("dependency", probe.Name).Int("attempt", attempt).Msg("health probe failed")

			if attempt == attempts || !sleep(ctx, wait) {
				break
			}
		}

		if err != nil {
			report.Status = statusDown
			report.Checks[probe.Name] = statusDown

			continue
		}

		report.Checks[probe.Name] = statusUp
	}

	return report
}

func sleep(ctx context.Context, wait time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(wait):
		return true
	}
}
