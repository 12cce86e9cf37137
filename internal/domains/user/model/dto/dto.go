package dto

import (
	"strings"
	"time"

	"pms/internal/domains/user/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"

	"github.com/google/uuid"
)

var SortColumns = gDto.SortColumns{
	"email":      model.TableName + "." + model.FieldEmail,
	"name":       "LOWER(" + model.TableName + "." + model.FieldName + ")",
	"role":       model.TableName + "." + model.FieldRole,
	"last_login": model.TableName + "." + model.FieldLastLogin,
	"created_at": model.TableName + "." + model.FieldCreatedAt,
}

const DefaultSort = "email"

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"omitempty,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin manager staff"`
}

func (r *CreateUserRequest) ToModel(user string, hashedPassword string) model.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleStaff
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    NormalizeEmail(r.Email),
		Password: hashedPassword,
		Name:     strings.TrimSpace(r.Name),
		Role:     role,
		Active:   true,
		Metadata: gDto.NewMetadata(user),
	}
}

type UpdateUserRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Role   string `db:"role"   json:"role"   validate:"omitempty,oneof=admin manager staff"`
	Active *bool  `db:"active" json:"active"`
}

func (u *UpdateUserRequest) IsEmpty() bool {
	return u.Name == constant.Empty && u.Role == constant.Empty && u.Active == nil
}

type ListUsersRequest struct {
	Search string
	Role   string
}

func (l ListUsersRequest) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search, ok := shared.SearchGroup(l.Search, model.TableName, model.FieldEmail, model.FieldName); ok {
		filter.Add(search)
	}

	if role, ok := shared.FilterUnlessAll(model.FieldRole, l.Role, model.TableName); ok {
		filter.Add(role)
	}

	return filter
}

// EmailFilter matches a user by normalized email.
func EmailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    NormalizeEmail(email),
				Table:    model.TableName,
			},
		},
	}
}

// ActiveAdminsFilter matches admins that can still sign in.
func ActiveAdminsFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRole, Operator: gDto.FilterOperatorEq, Value: constant.RoleAdmin, Table: model.TableName},
			gDto.Filter{Field: model.FieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
		},
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Name = model.Name
	r.Role = model.Role
	r.Active = model.Active
	r.LastLogin = model.LastLogin
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
