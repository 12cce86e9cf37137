package dashboard

import (
	"net/http"

	"pms/infras/otel"
	"pms/internal/domains/dashboard/model/dto"
	"pms/internal/domains/dashboard/service"
	"pms/shared"
	"pms/shared/constant"
	"pms/shared/failure"
	"pms/shared/validator"
	"pms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard/metrics", handler.Metrics)
	router.Get("/dashboard/upcoming", handler.Upcoming)
	router.Get("/dashboard/summary", handler.Summary)
	router.Get("/dashboard/occupancy", handler.Occupancy)
}

// Metrics returns the headline figures for a time filter.
// @Summary Dashboard metrics
// @Tags Dashboard
// @Produce json
// @Param filter query string false "Time filter" Enums(today, yesterday, last7days, last30days, thisMonth, lastMonth)
// @Success 200 {object} response.Data[dto.MetricsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/metrics [get]
// @Security BearerAuth
func (handler *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Metrics")
	defer scope.End()

	metrics, err := handler.service.Metrics(ctx, r.URL.Query().Get(constant.RequestParamFilter))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute dashboard metrics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, metrics)
}

// Upcoming lists the next confirmed arrivals.
// @Summary Upcoming bookings
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.UpcomingResponse]
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/upcoming [get]
// @Security BearerAuth
func (handler *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Upcoming")
	defer scope.End()

	upcoming, err := handler.service.Upcoming(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load upcoming bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, upcoming)
}

// Summary returns today's arrivals, departures and room status counts.
// @Summary Daily summary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/summary [get]
// @Security BearerAuth
func (handler *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Summary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// Occupancy returns the booked occupancy series for the trailing days.
// @Summary Occupancy series
// @Tags Dashboard
// @Produce json
// @Param days query integer false "Number of days, 1 to 90"
// @Success 200 {object} response.Data[dto.OccupancyResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/occupancy [get]
// @Security BearerAuth
func (handler *Handler) Occupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Occupancy")
	defer scope.End()

	req := dto.OccupancyRequest{}

	if days := r.URL.Query().Get("days"); days != constant.Empty {
		value, err := shared.ConvertStringToInt(days)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("days must be a number"))

			return
		}

		req.Days = value
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	series, err := handler.service.Occupancy(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute occupancy series")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, series)
}
