package dto

import (
	"mime/multipart"
	"strings"
	"time"

	"pms/internal/domains/expense/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/timezone"

	"github.com/google/uuid"
)

var SortColumns = gDto.SortColumns{
	"date":       model.TableName + "." + model.FieldDate,
	"category":   model.TableName + "." + model.FieldCategory,
	"amount":     model.TableName + "." + model.FieldAmount,
	"created_at": model.TableName + "." + model.FieldCreatedAt,
}

const DefaultSort = "date"

type CreateExpenseRequest struct {
	Date          string                `json:"date"           validate:"required,day"`
	Category      string                `json:"category"       validate:"required,oneof=maintenance supplies utilities staff marketing taxes other"`
	Amount        float64               `json:"amount"         validate:"gt=0"`
	Description   string                `json:"description"    validate:"required,max=500"`
	PaymentMethod string                `json:"payment_method" validate:"required,oneof=credit_card bank_transfer direct_debit cash"`
	Receipt       *multipart.FileHeader `json:"-"              validate:"omitempty,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
}

func (c *CreateExpenseRequest) ToModel(user string, date time.Time, receiptURL string) model.Expense {
	return model.Expense{
		ID:            uuid.NewString(),
		Date:          date,
		Category:      c.Category,
		Amount:        c.Amount,
		Description:   strings.TrimSpace(c.Description),
		PaymentMethod: c.PaymentMethod,
		Receipt:       receiptURL,
		Metadata:      gDto.NewMetadata(user),
	}
}

type UpdateExpenseRequest struct {
	Date          string                `db:"-"              json:"date"           validate:"omitempty,day"`
	Category      string                `db:"category"       json:"category"       validate:"omitempty,oneof=maintenance supplies utilities staff marketing taxes other"`
	Amount        *float64              `db:"amount"         json:"amount"         validate:"omitempty,gt=0"`
	Description   string                `db:"description"    json:"description"    validate:"omitempty,max=500"`
	PaymentMethod string                `db:"payment_method" json:"payment_method" validate:"omitempty,oneof=credit_card bank_transfer direct_debit cash"`
	Receipt       *multipart.FileHeader `json:"-"            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
}

func (u *UpdateExpenseRequest) IsEmpty() bool {
	return u.Date == constant.Empty && u.Category == constant.Empty && u.Amount == nil &&
		u.Description == constant.Empty && u.PaymentMethod == constant.Empty && u.Receipt == nil
}

// Period is an inclusive date range; either end may be open.
type Period struct {
	From string
	To   string
}

func (p Period) Bounds() (from, to time.Time, err error) {
	if p.From != constant.Empty {
		if from, err = timezone.ParseDate(p.From); err != nil {
			return from, to, failure.BadRequestFromString("from must be a date in YYYY-MM-DD format") // nolint:wrapcheck
		}
	}

	if p.To != constant.Empty {
		if to, err = timezone.ParseDate(p.To); err != nil {
			return from, to, failure.BadRequestFromString("to must be a date in YYYY-MM-DD format") // nolint:wrapcheck
		}
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, failure.BadRequestFromString("from must not be after to") // nolint:wrapcheck
	}

	return from, to, nil
}

func (p Period) filters() ([]any, error) {
	from, to, err := p.Bounds()
	if err != nil {
		return nil, err
	}

	filters := []any{}

	if !from.IsZero() {
		filters = append(filters, gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	if !to.IsZero() {
		filters = append(filters, gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Value: to, Operator: gDto.FilterOperatorLessEq, Table: model.TableName})
	}

	return filters, nil
}

type ListExpensesRequest struct {
	Search        string
	Category      string
	PaymentMethod string
	Period
}

func (l ListExpensesRequest) ToFilter() (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search, ok := shared.SearchGroup(l.Search, model.TableName, model.FieldDescription); ok {
		filter.Add(search)
	}

	if category, ok := shared.FilterUnlessAll(model.FieldCategory, l.Category, model.TableName); ok {
		filter.Add(category)
	}

	if method, ok := shared.FilterUnlessAll(model.FieldPaymentMethod, l.PaymentMethod, model.TableName); ok {
		filter.Add(method)
	}

	dates, err := l.filters()
	if err != nil {
		return filter, err
	}

	filter.Add(dates...)

	return filter, nil
}

// PeriodFilter restricts expenses to the period.
func PeriodFilter(period Period) (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	dates, err := period.filters()
	if err != nil {
		return filter, err
	}

	filter.Add(dates...)

	return filter, nil
}

type ExpenseResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method"`
	Receipt       string  `json:"receipt,omitempty"`
	gDto.Metadata
}

func (r *ExpenseResponse) FromModel(model model.Expense) {
	r.ID = model.ID
	r.Date = gDto.FormatDay(model.Date)
	r.Category = model.Category
	r.Amount = model.Amount
	r.Description = model.Description
	r.PaymentMethod = model.PaymentMethod
	r.Receipt = model.Receipt
	r.Metadata.FromModel(model.Metadata)
}

type GetExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetExpensesResponse) FromModels(models []model.Expense, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Expenses = make([]ExpenseResponse, len(models))
	for i, mod := range models {
		r.Expenses[i].FromModel(mod)
	}
}

type SummaryResponse struct {
	From       string                `json:"from,omitempty"`
	To         string                `json:"to,omitempty"`
	Total      float64               `json:"total"`
	Categories []model.CategoryTotal `json:"categories"`
}
