package model

import (
	"slices"
	"time"

	"pms/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldGuestID         = "guest_id"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldStatus          = "status"
	FieldTotalAmount     = "total_amount"
	FieldPaymentStatus   = "payment_status"
	FieldAdults          = "adults"
	FieldChildren        = "children"
	FieldSpecialRequests = "special_requests"
	FieldCreatedAt       = "created_at"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

const (
	PaymentPaid          = "paid"
	PaymentPartiallyPaid = "partially_paid"
	PaymentUnpaid        = "unpaid"
)

// ActiveStatuses hold a room; only these take part in overlap checks.
var ActiveStatuses = []string{StatusConfirmed, StatusCheckedIn}

// RevenueStatuses count towards the revenue estimate.
var RevenueStatuses = []string{StatusCheckedIn, StatusCheckedOut}

var transitions = map[string][]string{
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

type Booking struct {
	ID              string    `db:"id"`
	RoomID          string    `db:"room_id"`
	GuestID         string    `db:"guest_id"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      string    `db:"guest_phone"`
	CheckIn         time.Time `db:"check_in"`
	CheckOut        time.Time `db:"check_out"`
	Status          string    `db:"status"`
	TotalAmount     float64   `db:"total_amount"`
	PaymentStatus   string    `db:"payment_status"`
	Adults          int       `db:"adults"`
	Children        int       `db:"children"`
	SpecialRequests string    `db:"special_requests"`
	model.Metadata
}

// Nights is the number of nights between check-in and check-out.
func (b Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// Active reports whether the booking holds its room.
func (b Booking) Active() bool {
	return slices.Contains(ActiveStatuses, b.Status)
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

// Nights counts calendar days between two dates, ignoring time of day.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	return int(out.Sub(in).Hours() / 24)
}
