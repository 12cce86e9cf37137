package dto

import (
	"mime/multipart"
	"strings"

	"pms/internal/domains/room/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	gModel "pms/shared/model"

	"github.com/google/uuid"
)

var SortColumns = gDto.SortColumns{
	"number":     model.TableName + "." + model.FieldNumber,
	"type":       model.TableName + "." + model.FieldType,
	"floor":      model.TableName + "." + model.FieldFloor,
	"capacity":   model.TableName + "." + model.FieldCapacity,
	"base_price": model.TableName + "." + model.FieldBasePrice,
	"status":     model.TableName + "." + model.FieldStatus,
	"created_at": model.TableName + "." + model.FieldCreatedAt,
}

const DefaultSort = "number"

// SplitAmenities parses a comma separated form value.
func SplitAmenities(value string) []string {
	amenities := []string{}

	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			amenities = append(amenities, item)
		}
	}

	return amenities
}

type CreateRoomRequest struct {
	Number    string                `json:"number"     validate:"required,max=20"`
	Type      string                `json:"type"       validate:"required,oneof=standard deluxe suite presidential"`
	Capacity  int                   `json:"capacity"   validate:"required,min=1,max=20"`
	BasePrice float64               `json:"base_price" validate:"gte=0"`
	Status    string                `json:"status"     validate:"omitempty,oneof=available occupied cleaning maintenance out_of_order"`
	Floor     int                   `json:"floor"      validate:"gte=0"`
	Amenities []string              `json:"amenities"  validate:"omitempty,dive,max=50"`
	Notes     string                `json:"notes"      validate:"omitempty,max=500"`
	Image     *multipart.FileHeader `json:"-"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string) model.Room {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	amenities := gModel.StringList(c.Amenities)
	if amenities == nil {
		amenities = gModel.StringList{}
	}

	return model.Room{
		ID:        uuid.NewString(),
		Number:    strings.TrimSpace(c.Number),
		Type:      c.Type,
		Capacity:  c.Capacity,
		BasePrice: c.BasePrice,
		Status:    status,
		Floor:     c.Floor,
		Amenities: amenities,
		Notes:     c.Notes,
		Image:     imageURL,
		Metadata:  gDto.NewMetadata(user),
	}
}

// UpdateRoomRequest holds optional changes; pointer fields keep explicit zero values.
type UpdateRoomRequest struct {
	Number    string                `db:"number"     json:"number"     validate:"omitempty,max=20"`
	Type      string                `db:"type"       json:"type"       validate:"omitempty,oneof=standard deluxe suite presidential"`
	Capacity  *int                  `db:"capacity"   json:"capacity"   validate:"omitempty,min=1,max=20"`
	BasePrice *float64              `db:"base_price" json:"base_price" validate:"omitempty,gte=0"`
	Floor     *int                  `db:"floor"      json:"floor"      validate:"omitempty,gte=0"`
	Amenities *gModel.StringList    `db:"amenities"  json:"amenities"`
	Notes     *string               `db:"notes"      json:"notes"      validate:"omitempty,max=500"`
	Image     *multipart.FileHeader `json:"-"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.Number == constant.Empty && u.Type == constant.Empty && u.Capacity == nil && u.BasePrice == nil &&
		u.Floor == nil && u.Amenities == nil && u.Notes == nil && u.Image == nil
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied cleaning maintenance out_of_order"`
}

// ListRoomsRequest narrows the room listing. "all" disables the status and type filters.
type ListRoomsRequest struct {
	Search string
	Status string
	Type   string
	Floor  *int
}

func (l ListRoomsRequest) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search, ok := shared.SearchGroup(l.Search, model.TableName, model.FieldNumber, model.FieldType, model.FieldAmenities); ok {
		filter.Add(search)
	}

	if status, ok := shared.FilterUnlessAll(model.FieldStatus, l.Status, model.TableName); ok {
		filter.Add(status)
	}

	if roomType, ok := shared.FilterUnlessAll(model.FieldType, l.Type, model.TableName); ok {
		filter.Add(roomType)
	}

	if l.Floor != nil {
		filter.Add(gDto.Filter{Field: model.FieldFloor, Value: *l.Floor, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filter
}

type RoomResponse struct {
	ID        string   `json:"id"`
	Number    string   `json:"number"`
	Type      string   `json:"type"`
	Capacity  int      `json:"capacity"`
	BasePrice float64  `json:"base_price"`
	Status    string   `json:"status"`
	Floor     int      `json:"floor"`
	Amenities []string `json:"amenities"`
	Notes     string   `json:"notes"`
	Image     string   `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.BasePrice = model.BasePrice
	r.Status = model.Status
	r.Floor = model.Floor
	r.Amenities = []string(model.Amenities)
	r.Notes = model.Notes
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
