package model

import (
	"slices"

	"pms/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldNumber    = "number"
	FieldType      = "type"
	FieldCapacity  = "capacity"
	FieldBasePrice = "base_price"
	FieldStatus    = "status"
	FieldFloor     = "floor"
	FieldAmenities = "amenities"
	FieldNotes     = "notes"
	FieldImage     = "image"
	FieldCreatedAt = "created_at"
)

const (
	TypeStandard     = "standard"
	TypeDeluxe       = "deluxe"
	TypeSuite        = "suite"
	TypePresidential = "presidential"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusCleaning    = "cleaning"
	StatusMaintenance = "maintenance"
	StatusOutOfOrder  = "out_of_order"
)

type Room struct {
	ID        string           `db:"id"`
	Number    string           `db:"number"`
	Type      string           `db:"type"`
	Capacity  int              `db:"capacity"`
	BasePrice float64          `db:"base_price"`
	Status    string           `db:"status"`
	Floor     int              `db:"floor"`
	Amenities model.StringList `db:"amenities"`
	Notes     string           `db:"notes"`
	Image     string           `db:"image"`
	model.Metadata
}

// OutOfService reports whether the room cannot take guests regardless of bookings.
func (r Room) OutOfService() bool {
	return r.Status == StatusMaintenance || r.Status == StatusOutOfOrder
}

// Cleanable reports whether housekeeping may be scheduled for the room.
func (r Room) Cleanable() bool {
	return slices.Contains([]string{StatusAvailable, StatusOccupied, StatusCleaning}, r.Status)
}
