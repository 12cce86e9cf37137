package cleaning

import (
	"net/http"

	"pms/infras/otel"
	"pms/internal/domains/cleaning/model"
	"pms/internal/domains/cleaning/model/dto"
	"pms/internal/domains/cleaning/service"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/validator"
	"pms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cleaning
	otel    otel.Otel
}

func New(service service.Cleaning, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/cleaning-tasks", handler.CreateTask)
	router.Get("/cleaning-tasks", handler.GetTasks)
	router.Get("/cleaning-tasks/eligible-rooms", handler.EligibleRooms)
	router.Get("/cleaning-tasks/{id}", handler.GetTaskByID)
	router.Patch("/cleaning-tasks/{id}", handler.UpdateTask)
	router.Delete("/cleaning-tasks/{id}", handler.DeleteTask)
	router.Post("/cleaning-tasks/{id}/advance", handler.AdvanceTask)
}

// CreateTask schedules housekeeping for a room.
// @Summary Create a cleaning task
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param request body dto.CreateCleaningTaskRequest true "Task"
// @Success 201 {object} response.Data[dto.CleaningTaskResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Room cannot be cleaned"
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-tasks [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCleaningTask")
	defer scope.End()

	req := dto.CreateCleaningTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	task, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create cleaning task")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cleaning task created for room " + task.RoomNumber)

	response.WithJSON(w, http.StatusCreated, task)
}

// GetTasks lists cleaning tasks.
// @Summary Get all cleaning tasks
// @Tags Cleaning
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Search room number, assignee or notes"
// @Param status query string false "Filter by status, all for none"
// @Param priority query string false "Filter by priority, all for none"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetCleaningTasksResponse]
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-tasks [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleaningTasks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.ApplySort(dto.SortColumns, dto.DefaultSort, gDto.SortDirDesc)

	query := r.URL.Query()

	req := dto.ListCleaningTasksRequest{
		Search:   query.Get(constant.RequestParamSearch),
		Status:   query.Get(model.FieldStatus),
		Priority: query.Get(model.FieldPriority),
		RoomID:   query.Get(model.FieldRoomID),
	}

	tasks, err := handler.service.GetAll(ctx, queryParams, req.ToFilter())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning tasks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tasks)
}

// EligibleRooms lists rooms housekeeping can be scheduled for.
// @Summary Rooms eligible for cleaning
// @Tags Cleaning
// @Produce json
// @Success 200 {object} response.Data[dto.EligibleRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-tasks/eligible-rooms [get]
// @Security BearerAuth
func (handler *Handler) EligibleRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EligibleRooms")
	defer scope.End()

	rooms, err := handler.service.EligibleRooms(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list eligible rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetTaskByID retrieves a cleaning task.
// @Summary Get a cleaning task by ID
// @Tags Cleaning
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.CleaningTaskResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-tasks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleaningTaskByID")
	defer scope.End()

	task, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning task by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, task)
}

// UpdateTask changes assignment, priority, schedule or notes.
// @Summary Update a cleaning task
// @Description Status only moves through the advance endpoint.
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateCleaningTaskRequest true "Changes"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-tasks/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCleaningTask")
	defer scope.End()

	req := dto.UpdateCleaningTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cleaning task")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Cleaning task updated successfully")
}

// AdvanceTask moves a task to its next status.
// @Summary Advance a cleaning task
// @Description pending to in_progress to completed to verified.
// @Tags Cleaning
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Data[dto.CleaningTaskResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Task already verified"
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-tasks/{id}/advance [post]
// @Security BearerAuth
func (handler *Handler) AdvanceTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdvanceCleaningTask")
	defer scope.End()

	task, err := handler.service.Advance(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance cleaning task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Cleaning task moved to " + task.Status + " by user " + user)

	response.WithJSON(w, http.StatusOK, task)
}

// DeleteTask removes a cleaning task.
// @Summary Delete a cleaning task
// @Tags Cleaning
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cleaning-tasks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCleaningTask")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete cleaning task")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Cleaning task deleted successfully")
}
