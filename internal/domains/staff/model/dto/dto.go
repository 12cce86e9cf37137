package dto

import (
	"strings"
	"time"

	"pms/internal/domains/staff/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"

	"github.com/google/uuid"
)

var SortColumns = gDto.SortColumns{
	"name":       "LOWER(" + model.TableName + "." + model.FieldName + ")",
	"role":       model.TableName + "." + model.FieldRole,
	"department": model.TableName + "." + model.FieldDepartment,
	"start_date": model.TableName + "." + model.FieldStartDate,
	"created_at": model.TableName + "." + model.FieldCreatedAt,
}

const DefaultSort = "name"

type CreateStaffRequest struct {
	Name       string `json:"name"       validate:"required,max=100"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"      validate:"omitempty,max=30"`
	Role       string `json:"role"       validate:"required,max=50"`
	Department string `json:"department" validate:"required,max=50"`
	Status     string `json:"status"     validate:"omitempty,oneof=active inactive"`
	StartDate  string `json:"start_date" validate:"required,day"`
	Avatar     string `json:"avatar"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
}

func (c *CreateStaffRequest) ToModel(user string, startDate time.Time, avatarURL string) model.Staff {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusActive
	}

	return model.Staff{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(c.Name),
		Email:      strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:      c.Phone,
		Role:       c.Role,
		Department: c.Department,
		Status:     status,
		Avatar:     avatarURL,
		StartDate:  startDate,
		Metadata:   gDto.NewMetadata(user),
	}
}

type UpdateStaffRequest struct {
	Name       string  `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Email      string  `db:"email"      json:"email"      validate:"omitempty,email"`
	Phone      *string `db:"phone"      json:"phone"      validate:"omitempty,max=30"`
	Role       string  `db:"role"       json:"role"       validate:"omitempty,max=50"`
	Department string  `db:"department" json:"department" validate:"omitempty,max=50"`
	Status     string  `db:"status"     json:"status"     validate:"omitempty,oneof=active inactive"`
	StartDate  string  `db:"-"          json:"start_date" validate:"omitempty,day"`
	Avatar     string  `db:"-"          json:"avatar"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
}

func (u *UpdateStaffRequest) IsEmpty() bool {
	return u.Name == constant.Empty && u.Email == constant.Empty && u.Phone == nil && u.Role == constant.Empty &&
		u.Department == constant.Empty && u.Status == constant.Empty && u.StartDate == constant.Empty && u.Avatar == constant.Empty
}

func (u *UpdateStaffRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

type ListStaffRequest struct {
	Search     string
	Department string
	Status     string
}

func (l ListStaffRequest) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search, ok := shared.SearchGroup(l.Search, model.TableName, model.FieldName, model.FieldEmail, model.FieldRole); ok {
		filter.Add(search)
	}

	if department, ok := shared.FilterUnlessAll(model.FieldDepartment, l.Department, model.TableName); ok {
		filter.Add(department)
	}

	if status, ok := shared.FilterUnlessAll(model.FieldStatus, l.Status, model.TableName); ok {
		filter.Add(status)
	}

	return filter
}

type StaffResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
	Avatar     string `json:"avatar,omitempty"`
	StartDate  string `json:"start_date"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.Department = model.Department
	r.Status = model.Status
	r.Avatar = model.Avatar
	r.StartDate = gDto.FormatDay(model.StartDate)
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
