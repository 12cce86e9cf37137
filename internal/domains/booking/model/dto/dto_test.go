package dto_test

import (
	"net/http"
	"testing"
	"time"

	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/model/dto"
	guestModel "pms/internal/domains/guest/model"
	gDto "pms/shared/dto"
	"pms/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

func TestParseStay(t *testing.T) {
	tests := []struct {
		name     string
		in, out  string
		wantErr  bool
		wantDiff int
	}{
		{name: "valid", in: "2025-01-10", out: "2025-01-13", wantDiff: 3},
		{name: "same day", in: "2025-01-10", out: "2025-01-10", wantErr: true},
		{name: "reversed", in: "2025-01-13", out: "2025-01-10", wantErr: true},
		{name: "bad format", in: "10/01/2025", out: "2025-01-13", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, err := dto.ParseStay(tt.in, tt.out)
			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDiff, model.Nights(in, out))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{RoomID: "room-1", GuestID: "guest-1", Adults: 2}
	guest := guestModel.Guest{ID: "guest-1", Name: "John Smith", Email: "john@example.com", Phone: "555"}

	booking := req.ToModel("user-1", guest, day("2025-01-10"), day("2025-01-13"), 297)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, model.PaymentUnpaid, booking.PaymentStatus)
	assert.Equal(t, "John Smith", booking.GuestName)
	assert.Equal(t, "john@example.com", booking.GuestEmail)
	assert.InDelta(t, 297.0, booking.TotalAmount, 0.001)
}

func TestListBookingsRequest_ToFilter(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ListBookingsRequest
		wantWhere string
	}{
		{name: "no filters", req: dto.ListBookingsRequest{Status: "all"}, wantWhere: ""},
		{name: "status only", req: dto.ListBookingsRequest{Status: "confirmed"}, wantWhere: "(bookings.status = :status)"},
		{
			name: "search and status",
			req:  dto.ListBookingsRequest{Search: "smith", Status: "checked_in"},
			wantWhere: "((LOWER(CAST(bookings.guest_name AS TEXT)) LIKE LOWER(:search_guest_name) ESCAPE '!' OR " +
				"LOWER(CAST(bookings.guest_email AS TEXT)) LIKE LOWER(:search_guest_email) ESCAPE '!' OR " +
				"LOWER(CAST(bookings.room_id AS TEXT)) LIKE LOWER(:search_room_id) ESCAPE '!') AND bookings.status = :status)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.req.ToFilter()
			where, _ := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
		})
	}
}

func TestOverlapFilter(t *testing.T) {
	filter := dto.OverlapFilter("room-1", day("2025-01-10"), day("2025-01-13"), "booking-9")
	where, args := filter.GetWhereClause()

	assert.Equal(t,
		"(bookings.room_id = :room_id AND bookings.status IN (:status_0, :status_1) AND "+
			"(bookings.check_in < :range_to AND bookings.check_out > :range_from) AND bookings.id != :exclude_id)",
		where,
	)
	assert.Equal(t, day("2025-01-13"), args["range_to"])
	assert.Equal(t, day("2025-01-10"), args["range_from"])
	assert.Equal(t, model.StatusConfirmed, args["status_0"])
}

func TestSortBookings(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", GuestName: "carol", CheckIn: day("2025-01-12"), TotalAmount: 100},
		{ID: "b2", GuestName: "Alice", CheckIn: day("2025-01-10"), TotalAmount: 900},
		{ID: "b3", GuestName: "bob", CheckIn: day("2025-01-10"), TotalAmount: 25},
	}

	ids := func() []string {
		out := make([]string, len(bookings))
		for i, b := range bookings {
			out[i] = b.ID
		}

		return out
	}

	dto.SortBookings(bookings, "guest_name", gDto.SortDirAsc)
	assert.Equal(t, []string{"b2", "b3", "b1"}, ids())

	dto.SortBookings(bookings, "total_amount", gDto.SortDirDesc)
	assert.Equal(t, []string{"b2", "b1", "b3"}, ids())

	dto.SortBookings(bookings, "unknown", "")
	assert.Equal(t, []string{"b2", "b3", "b1"}, ids())
}
