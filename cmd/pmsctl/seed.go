package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingModel "pms/internal/domains/booking/model"
	bookingDto "pms/internal/domains/booking/model/dto"
	guestDto "pms/internal/domains/guest/model/dto"
	roomModel "pms/internal/domains/room/model"
	roomDto "pms/internal/domains/room/model/dto"
	gDto "pms/shared/dto"
	"pms/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errAlreadySeeded = errors.New("rooms already exist, seed only runs against an empty database")

type seedBooking struct {
	room     string
	guest    int
	from, to int
	status   string
	total    float64
	payment  string
	adults   int
	children int
	requests string
}

var (
	standard     = []string{"WiFi", "TV", "Air conditioning"}
	deluxeOcean  = []string{"WiFi", "TV", "Air conditioning", "Mini bar", "Ocean view"}
	deluxeHill   = []string{"WiFi", "TV", "Air conditioning", "Mini bar", "Mountain view"}
	suiteOcean   = []string{"WiFi", "TV", "Air conditioning", "Mini bar", "Ocean view", "Balcony", "Kitchenette"}
	suiteHill    = []string{"WiFi", "TV", "Air conditioning", "Mini bar", "Mountain view", "Balcony", "Kitchenette"}
	presidential = []string{"WiFi", "TV", "Air conditioning", "Mini bar", "Ocean view", "Balcony", "Kitchenette", "Private pool", "Butler service"}

	seedRooms = []roomDto.CreateRoomRequest{
		{Number: "101", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable, BasePrice: 99, Capacity: 2, Floor: 1, Amenities: standard},
		{Number: "102", Type: roomModel.TypeStandard, Status: roomModel.StatusOccupied, BasePrice: 99, Capacity: 2, Floor: 1, Amenities: standard},
		{Number: "103", Type: roomModel.TypeDeluxe, Status: roomModel.StatusCleaning, BasePrice: 149, Capacity: 2, Floor: 1, Amenities: deluxeOcean},
		{Number: "201", Type: roomModel.TypeDeluxe, Status: roomModel.StatusAvailable, BasePrice: 149, Capacity: 3, Floor: 2, Amenities: deluxeOcean},
		{
			Number: "202", Type: roomModel.TypeSuite, Status: roomModel.StatusMaintenance, BasePrice: 249, Capacity: 4, Floor: 2,
			Amenities: suiteOcean, Notes: "Maintenance scheduled, air handler replacement",
		},
		{Number: "301", Type: roomModel.TypePresidential, Status: roomModel.StatusAvailable, BasePrice: 499, Capacity: 4, Floor: 3, Amenities: presidential},
		{Number: "104", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable, BasePrice: 99, Capacity: 2, Floor: 1, Amenities: standard},
		{Number: "105", Type: roomModel.TypeStandard, Status: roomModel.StatusOccupied, BasePrice: 99, Capacity: 2, Floor: 1, Amenities: standard},
		{
			Number: "106", Type: roomModel.TypeDeluxe, Status: roomModel.StatusOutOfOrder, BasePrice: 149, Capacity: 2, Floor: 1,
			Amenities: deluxeOcean, Notes: "Flood damage, repair in progress",
		},
		{Number: "203", Type: roomModel.TypeDeluxe, Status: roomModel.StatusAvailable, BasePrice: 149, Capacity: 3, Floor: 2, Amenities: deluxeHill},
		{Number: "204", Type: roomModel.TypeSuite, Status: roomModel.StatusOccupied, BasePrice: 249, Capacity: 4, Floor: 2, Amenities: suiteHill},
		{Number: "302", Type: roomModel.TypePresidential, Status: roomModel.StatusAvailable, BasePrice: 499, Capacity: 4, Floor: 3, Amenities: presidential},
	}

	seedGuests = []guestDto.CreateGuestRequest{
		{Name: "John Smith", Email: "john.smith@example.com", Phone: "+1 555 123 4567", Address: "123 Main St, New York, NY 10001"},
		{Name: "Emily Johnson", Email: "emily.johnson@example.com", Phone: "+1 555 234 5678", Address: "456 Oak Ave, Los Angeles, CA 90001"},
		{Name: "Michael Brown", Email: "michael.brown@example.com", Phone: "+1 555 345 6789"},
		{
			Name: "Sarah Davis", Email: "sarah.davis@example.com", Phone: "+1 555 456 7890",
			Address: "789 Pine St, Chicago, IL 60007", Notes: "Allergic to nuts, prefers high floor",
		},
		{Name: "David Wilson", Email: "david.wilson@example.com", Phone: "+1 555 567 8901"},
		{Name: "Jennifer Taylor", Email: "jennifer.taylor@example.com", Phone: "+1 555 678 9012", Address: "101 Maple Dr, Miami, FL 33101"},
	}

	// stays are offsets in days from today
	seedBookings = []seedBooking{
		{room: "102", guest: 0, from: -1, to: 2, status: bookingModel.StatusCheckedIn, total: 297, payment: bookingModel.PaymentPaid, adults: 2},
		{room: "105", guest: 1, from: -2, to: 1, status: bookingModel.StatusCheckedIn, total: 297, payment: bookingModel.PaymentPaid, adults: 2},
		{
			room: "204", guest: 2, from: -3, to: 3, status: bookingModel.StatusCheckedIn, total: 1494, payment: bookingModel.PaymentPaid,
			adults: 2, children: 2, requests: "Extra pillows, late checkout",
		},
		{room: "101", guest: 3, from: 1, to: 5, status: bookingModel.StatusConfirmed, total: 396, payment: bookingModel.PaymentPartiallyPaid, adults: 1},
	}
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo rooms, guests and bookings into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seed(operatorContext(cmd.Context()), timezone.CurrentDate())
		},
	}
}

func seed(ctx context.Context, today time.Time) error {
	count, err := console.Room.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}

	if count > 0 {
		return errAlreadySeeded
	}

	rooms := make(map[string]string, len(seedRooms))

	for _, req := range seedRooms {
		room, err := console.Room.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to seed room %s: %w", req.Number, err)
		}

		rooms[req.Number] = room.ID
	}

	guests := make([]string, len(seedGuests))

	for i, req := range seedGuests {
		guest, err := console.Guest.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to seed guest %s: %w", req.Email, err)
		}

		guests[i] = guest.ID
	}

	for _, stay := range seedBookings {
		total := stay.total

		req := bookingDto.CreateBookingRequest{
			RoomID:          rooms[stay.room],
			GuestID:         guests[stay.guest],
			CheckIn:         gDto.FormatDay(today.AddDate(0, 0, stay.from)),
			CheckOut:        gDto.FormatDay(today.AddDate(0, 0, stay.to)),
			Status:          stay.status,
			TotalAmount:     &total,
			PaymentStatus:   stay.payment,
			Adults:          stay.adults,
			Children:        stay.children,
			SpecialRequests: stay.requests,
		}

		if _, err := console.Booking.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed booking for room %s: %w", stay.room, err)
		}
	}

	log.Info().
		Int("rooms", len(seedRooms)).
		Int("guests", len(seedGuests)).
		Int("bookings", len(seedBookings)).
		Msg("Seeded demo data")

	return nil
}
