package expense

import (
	"net/http"

	"pms/infras/otel"
	"pms/internal/domains/expense/model"
	"pms/internal/domains/expense/model/dto"
	"pms/internal/domains/expense/service"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/validator"
	"pms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Expense
	otel    otel.Otel
}

func New(service service.Expense, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/expenses", handler.CreateExpense)
	router.Get("/expenses", handler.GetExpenses)
	router.Get("/expenses/summary", handler.Summary)
	router.Get("/expenses/{id}", handler.GetExpenseByID)
	router.Patch("/expenses/{id}", handler.UpdateExpense)
	router.Delete("/expenses/{id}", handler.DeleteExpense)
}

func formAmount(request *http.Request) (*float64, error) {
	value := request.FormValue(model.FieldAmount)
	if value == constant.Empty {
		return nil, nil // nolint:nilnil
	}

	amount, err := shared.ConvertStringToFloat(value)
	if err != nil {
		return nil, failure.BadRequestFromString("amount must be a number") // nolint:wrapcheck
	}

	return &amount, nil
}

func period(request *http.Request) dto.Period {
	query := request.URL.Query()

	return dto.Period{
		From: query.Get(constant.RequestParamFrom),
		To:   query.Get(constant.RequestParamTo),
	}
}

// CreateExpense records an operating expense with an optional receipt.
// @Summary Create an expense
// @Tags Expense
// @Accept multipart/form-data
// @Produce json
// @Param date formData string true "YYYY-MM-DD"
// @Param category formData string true "Category" Enums(maintenance, supplies, utilities, staff, marketing, taxes, other)
// @Param amount formData number true "Positive amount"
// @Param description formData string true "Description"
// @Param payment_method formData string true "Payment method" Enums(credit_card, bank_transfer, direct_debit, cash)
// @Param receipt formData file false "Receipt image or PDF"
// @Success 201 {object} response.Data[dto.ExpenseResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses [post]
// @Security BearerAuth
func (handler *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExpense")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.CreateExpenseRequest{
		Date:          r.FormValue(model.FieldDate),
		Category:      r.FormValue(model.FieldCategory),
		Description:   r.FormValue(model.FieldDescription),
		PaymentMethod: r.FormValue(model.FieldPaymentMethod),
	}

	if _, fileHeader, err := r.FormFile(model.FieldReceipt); err == nil {
		req.Receipt = fileHeader
	}

	amount, err := formAmount(r)
	if amount != nil {
		req.Amount = *amount
	}

	if err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	expense, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create expense")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Expense created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, expense)
}

// GetExpenses lists expenses.
// @Summary Get all expenses
// @Tags Expense
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Search description"
// @Param category query string false "Filter by category, all for none"
// @Param payment_method query string false "Filter by payment method, all for none"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.GetExpensesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses [get]
// @Security BearerAuth
func (handler *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpenses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.ApplySort(dto.SortColumns, dto.DefaultSort, gDto.SortDirDesc)

	query := r.URL.Query()

	req := dto.ListExpensesRequest{
		Search:        query.Get(constant.RequestParamSearch),
		Category:      query.Get(model.FieldCategory),
		PaymentMethod: query.Get(model.FieldPaymentMethod),
		Period:        period(r),
	}

	filter, err := req.ToFilter()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	expenses, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expenses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, expenses)
}

// Summary totals expenses per category and payment method.
// @Summary Expense summary
// @Tags Expense
// @Produce json
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses/summary [get]
// @Security BearerAuth
func (handler *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExpenseSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx, period(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to summarize expenses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetExpenseByID retrieves an expense.
// @Summary Get an expense by ID
// @Tags Expense
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} response.Data[dto.ExpenseResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpenseByID")
	defer scope.End()

	expense, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expense by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, expense)
}

// UpdateExpense changes an expense.
// @Summary Update an expense
// @Tags Expense
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Expense ID"
// @Param date formData string false "YYYY-MM-DD"
// @Param category formData string false "Category"
// @Param amount formData number false "Positive amount"
// @Param description formData string false "Description"
// @Param payment_method formData string false "Payment method"
// @Param receipt formData file false "Receipt image or PDF"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExpense")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UpdateExpenseRequest{
		Date:          r.FormValue(model.FieldDate),
		Category:      r.FormValue(model.FieldCategory),
		Description:   r.FormValue(model.FieldDescription),
		PaymentMethod: r.FormValue(model.FieldPaymentMethod),
	}

	if _, fileHeader, err := r.FormFile(model.FieldReceipt); err == nil {
		req.Receipt = fileHeader
	}

	var err error

	if req.Amount, err = formAmount(r); err == nil {
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update expense")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Expense updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Expense updated successfully")
}

// DeleteExpense removes an expense.
// @Summary Delete an expense
// @Tags Expense
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExpense")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete expense")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Expense deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Expense deleted successfully")
}
