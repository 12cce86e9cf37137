package dto

import (
	"strings"

	"pms/internal/domains/guest/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"

	"github.com/google/uuid"
)

var SortColumns = gDto.SortColumns{
	"name":       "LOWER(" + model.TableName + "." + model.FieldName + ")",
	"email":      "LOWER(" + model.TableName + "." + model.FieldEmail + ")",
	"created_at": model.TableName + "." + model.FieldCreatedAt,
}

const DefaultSort = "name"

type CreateGuestRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"required,max=20"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Notes   string `json:"notes"   validate:"omitempty,max=500"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:    strings.TrimSpace(c.Phone),
		Address:  c.Address,
		Notes:    c.Notes,
		Metadata: gDto.NewMetadata(user),
	}
}

type UpdateGuestRequest struct {
	Name    string  `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Email   string  `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	Phone   string  `db:"phone"   json:"phone"   validate:"omitempty,max=20"`
	Address *string `db:"address" json:"address" validate:"omitempty,max=255"`
	Notes   *string `db:"notes"   json:"notes"   validate:"omitempty,max=500"`
}

func (u *UpdateGuestRequest) IsEmpty() bool {
	return u.Name == constant.Empty && u.Email == constant.Empty && u.Phone == constant.Empty &&
		u.Address == nil && u.Notes == nil
}

// Normalize lowercases the email so uniqueness ignores case.
func (u *UpdateGuestRequest) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

// ToFilter searches name, email and phone.
func ToFilter(search string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if group, ok := shared.SearchGroup(search, model.TableName, model.FieldName, model.FieldEmail, model.FieldPhone); ok {
		filter.Add(group)
	}

	return filter
}

type GuestResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
