package dto

import (
	"strconv"
	"time"

	"pms/internal/domains/availability"
	roomDto "pms/internal/domains/room/model/dto"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/timezone"
)

type CalendarRequest struct {
	Anchor string `json:"anchor" validate:"omitempty,day"`
	View   string `json:"view"   validate:"omitempty,oneof=week month"`
	Type   string `json:"type"   validate:"omitempty,oneof=all standard deluxe suite presidential"`
	Floor  *int   `json:"floor"  validate:"omitempty,gte=0"`
}

// Normalize fills the default view and resolves the anchor date, today when empty.
func (c *CalendarRequest) Normalize() (time.Time, error) {
	if c.View == constant.Empty {
		c.View = availability.ViewWeek
	}

	return anchorOrToday(c.Anchor)
}

// CacheTag identifies the room filters of the request.
func (c *CalendarRequest) CacheTag() string {
	roomType := constant.FilterAll
	if c.Type != constant.Empty {
		roomType = c.Type
	}

	floor := constant.FilterAll
	if c.Floor != nil {
		floor = strconv.Itoa(*c.Floor)
	}

	return roomType + "-" + floor
}

type NavigateRequest struct {
	Anchor    string `json:"anchor"    validate:"omitempty,day"`
	View      string `json:"view"      validate:"omitempty,oneof=week month"`
	Direction string `json:"direction" validate:"required,oneof=previous next today"`
}

func (n *NavigateRequest) Normalize() (time.Time, error) {
	if n.View == constant.Empty {
		n.View = availability.ViewWeek
	}

	return anchorOrToday(n.Anchor)
}

type SelectableRoomsRequest struct {
	CheckIn  string `json:"check_in"  validate:"required_with=CheckOut,omitempty,day"`
	CheckOut string `json:"check_out" validate:"required_with=CheckIn,omitempty,day"`
}

func (s SelectableRoomsRequest) HasRange() bool {
	return s.CheckIn != constant.Empty && s.CheckOut != constant.Empty
}

func anchorOrToday(value string) (time.Time, error) {
	if value == constant.Empty {
		return timezone.CurrentDate(), nil
	}

	return timezone.ParseDate(value) // nolint:wrapcheck
}

// Days renders dates as YYYY-MM-DD.
func Days(days []time.Time) []string {
	out := make([]string, len(days))
	for i, day := range days {
		out[i] = gDto.FormatDay(day)
	}

	return out
}

type CellResponse struct {
	Date          string `json:"date"`
	State         string `json:"state"`
	BookingID     string `json:"booking_id,omitempty"`
	BookingStatus string `json:"booking_status,omitempty"`
	GuestName     string `json:"guest_name,omitempty"`
}

func (c *CellResponse) FromResult(date time.Time, state string, result availability.Result) {
	c.Date = gDto.FormatDay(date)
	c.State = state

	if result.Booked {
		c.BookingID = result.Booking.ID
		c.BookingStatus = result.Booking.Status
		c.GuestName = result.Booking.GuestName
	}
}

type RowResponse struct {
	RoomID     string         `json:"room_id"`
	RoomNumber string         `json:"room_number"`
	RoomType   string         `json:"room_type"`
	Floor      int            `json:"floor"`
	RoomStatus string         `json:"room_status"`
	Cells      []CellResponse `json:"cells"`
}

type CalendarResponse struct {
	View     string        `json:"view"`
	Anchor   string        `json:"anchor"`
	Previous string        `json:"previous"`
	Next     string        `json:"next"`
	Days     []string      `json:"days"`
	Rows     []RowResponse `json:"rows"`
}

type RoomDayResponse struct {
	RoomID     string `json:"room_id"`
	Date       string `json:"date"`
	State      string `json:"state"`
	Booked     bool   `json:"booked"`
	IsCheckIn  bool   `json:"is_check_in"`
	IsCheckOut bool   `json:"is_check_out"`
	BookingID  string `json:"booking_id,omitempty"`
	GuestName  string `json:"guest_name,omitempty"`
}

func (r *RoomDayResponse) FromResult(roomID string, date time.Time, state string, result availability.Result) {
	r.RoomID = roomID
	r.Date = gDto.FormatDay(date)
	r.State = state
	r.Booked = result.Booked
	r.IsCheckIn = result.IsCheckIn
	r.IsCheckOut = result.IsCheckOut
	r.BookingID = result.Booking.ID
	r.GuestName = result.Booking.GuestName
}

type NavigateResponse struct {
	View   string   `json:"view"`
	Anchor string   `json:"anchor"`
	Days   []string `json:"days"`
}

type SelectableRoomsResponse struct {
	CheckIn  string                 `json:"check_in,omitempty"`
	CheckOut string                 `json:"check_out,omitempty"`
	Rooms    []roomDto.RoomResponse `json:"rooms"`
}
