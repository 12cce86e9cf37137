package dto

import (
	"time"

	"pms/internal/domains/booking/model"
	guestModel "pms/internal/domains/guest/model"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/timezone"

	"github.com/google/uuid"
)

var SortColumns = gDto.SortColumns{
	"check_in":     model.TableName + "." + model.FieldCheckIn,
	"check_out":    model.TableName + "." + model.FieldCheckOut,
	"guest_name":   "LOWER(" + model.TableName + "." + model.FieldGuestName + ")",
	"room_id":      model.TableName + "." + model.FieldRoomID,
	"status":       model.TableName + "." + model.FieldStatus,
	"total_amount": model.TableName + "." + model.FieldTotalAmount,
	"created_at":   model.TableName + "." + model.FieldCreatedAt,
}

const DefaultSort = "check_in"

// ParseStay parses a check-in / check-out pair and enforces check-in before check-out.
func ParseStay(checkIn, checkOut string) (in, out time.Time, err error) {
	in, err = timezone.ParseDate(checkIn)
	if err != nil {
		return in, out, failure.BadRequest(err) // nolint:wrapcheck
	}

	out, err = timezone.ParseDate(checkOut)
	if err != nil {
		return in, out, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !in.Before(out) {
		return in, out, failure.BadRequestFromString("check_in must be before check_out") // nolint:wrapcheck
	}

	return in, out, nil
}

type CreateBookingRequest struct {
	RoomID          string   `json:"room_id"          validate:"required"`
	GuestID         string   `json:"guest_id"         validate:"required"`
	CheckIn         string   `json:"check_in"         validate:"required,day"`
	CheckOut        string   `json:"check_out"        validate:"required,day"`
	Status          string   `json:"status"           validate:"omitempty,oneof=confirmed checked_in"`
	TotalAmount     *float64 `json:"total_amount"     validate:"omitempty,gte=0"`
	PaymentStatus   string   `json:"payment_status"   validate:"omitempty,oneof=paid partially_paid unpaid"`
	Adults          int      `json:"adults"           validate:"required,min=1"`
	Children        int      `json:"children"         validate:"gte=0"`
	SpecialRequests string   `json:"special_requests" validate:"omitempty,max=500"`
}

// ToModel builds a booking with the guest snapshot taken now.
func (c *CreateBookingRequest) ToModel(user string, guest guestModel.Guest, checkIn, checkOut time.Time, totalAmount float64) model.Booking {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusConfirmed
	}

	payment := c.PaymentStatus
	if payment == constant.Empty {
		payment = model.PaymentUnpaid
	}

	return model.Booking{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		GuestID:         guest.ID,
		GuestName:       guest.Name,
		GuestEmail:      guest.Email,
		GuestPhone:      guest.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Status:          status,
		TotalAmount:     totalAmount,
		PaymentStatus:   payment,
		Adults:          c.Adults,
		Children:        c.Children,
		SpecialRequests: c.SpecialRequests,
		Metadata:        gDto.NewMetadata(user),
	}
}

// UpdateBookingRequest changes booking details. Status moves only through the transition endpoints.
type UpdateBookingRequest struct {
	RoomID          string   `db:"room_id"          json:"room_id"`
	CheckIn         string   `db:"-"                json:"check_in"         validate:"omitempty,day"`
	CheckOut        string   `db:"-"                json:"check_out"        validate:"omitempty,day"`
	TotalAmount     *float64 `db:"total_amount"     json:"total_amount"     validate:"omitempty,gte=0"`
	PaymentStatus   string   `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=paid partially_paid unpaid"`
	Adults          *int     `db:"adults"           json:"adults"           validate:"omitempty,min=1"`
	Children        *int     `db:"children"         json:"children"         validate:"omitempty,gte=0"`
	SpecialRequests *string  `db:"special_requests" json:"special_requests" validate:"omitempty,max=500"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.RoomID == constant.Empty && u.CheckIn == constant.Empty && u.CheckOut == constant.Empty &&
		u.TotalAmount == nil && u.PaymentStatus == constant.Empty && u.Adults == nil && u.Children == nil &&
		u.SpecialRequests == nil
}

// ChangesStay reports whether the room or dates move, which requires a fresh overlap check.
func (u *UpdateBookingRequest) ChangesStay() bool {
	return u.RoomID != constant.Empty || u.CheckIn != constant.Empty || u.CheckOut != constant.Empty
}

// ListBookingsRequest narrows the booking listing. An empty or "all" status means no status filter.
type ListBookingsRequest struct {
	Search  string
	Status  string
	RoomID  string
	GuestID string
}

func (l ListBookingsRequest) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search, ok := shared.SearchGroup(l.Search, model.TableName, model.FieldGuestName, model.FieldGuestEmail, model.FieldRoomID); ok {
		filter.Add(search)
	}

	if status, ok := shared.FilterUnlessAll(model.FieldStatus, l.Status, model.TableName); ok {
		filter.Add(status)
	}

	if l.RoomID != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldRoomID, Value: l.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if l.GuestID != constant.Empty {
		filter.Add(gDto.Filter{Field: model.FieldGuestID, Value: l.GuestID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filter
}

// OverlapFilter matches active bookings of a room intersecting the half-open range [from, to).
// A stay ending on from (same-day turnover) does not match.
func OverlapFilter(roomID string, from, to time.Time, excludeID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
	)
	filter.Add(RangeFilter(from, to))

	if excludeID != constant.Empty {
		filter.Add(gDto.Filter{ArgName: "exclude_id", Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	return filter
}

// RangeFilter matches bookings whose stay intersects [from, to).
func RangeFilter(from, to time.Time) gDto.FilterGroup {
	return gDto.Overlaps(model.TableName, model.FieldCheckIn, model.FieldCheckOut, from, to)
}

// StatusFilter matches bookings in any of statuses.
func StatusFilter(statuses ...string) gDto.Filter {
	return gDto.Filter{Field: model.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName}
}

type BookingResponse struct {
	ID              string  `json:"id"`
	RoomID          string  `json:"room_id"`
	GuestID         string  `json:"guest_id"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	Nights          int     `json:"nights"`
	Status          string  `json:"status"`
	TotalAmount     float64 `json:"total_amount"`
	PaymentStatus   string  `json:"payment_status"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	SpecialRequests string  `json:"special_requests"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.CheckIn = gDto.FormatDay(model.CheckIn)
	r.CheckOut = gDto.FormatDay(model.CheckOut)
	r.Nights = model.Nights()
	r.Status = model.Status
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = model.PaymentStatus
	r.Adults = model.Adults
	r.Children = model.Children
	r.SpecialRequests = model.SpecialRequests
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// ChronologicalOrder sorts by check-in then creation, the order the availability resolver relies on.
var ChronologicalOrder = gDto.QueryParams{
	SortBy:  model.TableName + "." + model.FieldCheckIn + " ASC, " + model.TableName + "." + model.FieldCreatedAt,
	SortDir: gDto.SortDirAsc,
}

// FormatDayPair renders the stay dates, preferring the requested values when present.
func FormatDayPair(checkIn, checkOut time.Time, reqCheckIn, reqCheckOut string) (string, string) {
	in, out := gDto.FormatDay(checkIn), gDto.FormatDay(checkOut)

	if reqCheckIn != constant.Empty {
		in = reqCheckIn
	}

	if reqCheckOut != constant.Empty {
		out = reqCheckOut
	}

	return in, out
}
