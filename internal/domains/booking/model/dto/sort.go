package dto

import (
	"cmp"
	"slices"
	"strings"

	"pms/internal/domains/booking/model"
	gDto "pms/shared/dto"
)

type comparator func(a, b model.Booking) int

var comparators = map[string]comparator{
	"check_in":     func(a, b model.Booking) int { return a.CheckIn.Compare(b.CheckIn) },
	"check_out":    func(a, b model.Booking) int { return a.CheckOut.Compare(b.CheckOut) },
	"created_at":   func(a, b model.Booking) int { return a.CreatedAt.Compare(b.CreatedAt) },
	"total_amount": func(a, b model.Booking) int { return cmp.Compare(a.TotalAmount, b.TotalAmount) },
	"guest_name": func(a, b model.Booking) int {
		return strings.Compare(strings.ToLower(a.GuestName), strings.ToLower(b.GuestName))
	},
	"room_id": func(a, b model.Booking) int { return strings.Compare(a.RoomID, b.RoomID) },
	"status":  func(a, b model.Booking) int { return strings.Compare(a.Status, b.Status) },
}

// SortBookings orders loaded bookings in place with the same keys as the listing endpoint.
// Unknown keys fall back to check-in; ties keep their input order.
func SortBookings(bookings []model.Booking, sortBy, sortDir string) {
	compare, ok := comparators[sortBy]
	if !ok {
		compare = comparators[DefaultSort]
	}

	desc := strings.EqualFold(sortDir, gDto.SortDirDesc)

	slices.SortStableFunc(bookings, func(a, b model.Booking) int {
		if desc {
			return compare(b, a)
		}

		return compare(a, b)
	})
}
