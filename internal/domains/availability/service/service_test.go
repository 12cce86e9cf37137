package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"pms/config"
	"pms/infras/otel/mocks"
	"pms/internal/domains/availability"
	"pms/internal/domains/availability/model/dto"
	"pms/internal/domains/availability/service"
	bookingMocks "pms/internal/domains/booking/mocks"
	bookingModel "pms/internal/domains/booking/model"
	roomMocks "pms/internal/domains/room/mocks"
	roomModel "pms/internal/domains/room/model"
	cacheMocks "pms/shared/cache/mocks"
	gDto "pms/shared/dto"
	"pms/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

func setup(t *testing.T) (*roomMocks.MockRoom, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache, service.Availability) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rooms := roomMocks.NewMockRoom(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return rooms, bookings, mockCache, service.New(rooms, bookings, cfg, mockCache, mocks.NewOtel())
}

var calendarRooms = []roomModel.Room{
	{ID: "room-1", Number: "101", Type: roomModel.TypeStandard, Status: roomModel.StatusAvailable},
	{ID: "room-3", Number: "103", Type: roomModel.TypeStandard, Status: roomModel.StatusMaintenance},
}

func TestAvailabilityService_Calendar(t *testing.T) {
	rooms, bookings, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), "availability:calendar:week:2025-01-10:standard-all", gomock.Any()).Return(errors.New("miss"))
	rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(calendarRooms, nil)
	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, day("2025-01-09"), args["range_from"])
			assert.Equal(t, day("2025-01-24"), args["range_to"])
			assert.Contains(t, where, "bookings.status IN (:status_0, :status_1, :status_2)")
			assert.Equal(t, bookingModel.StatusConfirmed, args["status_0"])
			assert.Equal(t, bookingModel.StatusCheckedIn, args["status_1"])
			assert.Equal(t, bookingModel.StatusCheckedOut, args["status_2"])

			return []bookingModel.Booking{
				{ID: "b1", RoomID: "room-1", GuestName: "Emma", Status: bookingModel.StatusConfirmed, CheckIn: day("2025-01-11"), CheckOut: day("2025-01-13")},
			}, nil
		})

	res, err := svc.Calendar(context.Background(), dto.CalendarRequest{Anchor: "2025-01-10", Type: roomModel.TypeStandard})
	require.NoError(t, err)

	assert.Equal(t, availability.ViewWeek, res.View)
	assert.Equal(t, "2024-12-27", res.Previous)
	assert.Equal(t, "2025-01-24", res.Next)
	require.Len(t, res.Days, 14)
	require.Len(t, res.Rows, 2)

	first := res.Rows[0]
	assert.Equal(t, availability.CellAvailable, first.Cells[0].State)
	assert.Equal(t, availability.CellCheckIn, first.Cells[1].State)
	assert.Equal(t, "Emma", first.Cells[1].GuestName)
	assert.Equal(t, availability.CellOccupied, first.Cells[2].State)
	assert.Equal(t, availability.CellCheckOut, first.Cells[3].State)

	assert.Equal(t, availability.CellMaintenance, res.Rows[1].Cells[0].State)
}

func TestAvailabilityService_Calendar_BadAnchor(t *testing.T) {
	_, _, _, svc := setup(t)

	_, err := svc.Calendar(context.Background(), dto.CalendarRequest{Anchor: "Jan 10"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestAvailabilityService_RoomDay(t *testing.T) {
	t.Run("unknown room", func(t *testing.T) {
		rooms, _, _, svc := setup(t)

		rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := svc.RoomDay(context.Background(), "room-x", "2025-01-10")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("check-out day", func(t *testing.T) {
		rooms, bookings, _, svc := setup(t)

		rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(calendarRooms[0], nil)
		bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
			{ID: "b1", RoomID: "room-1", CheckIn: day("2025-01-08"), CheckOut: day("2025-01-10"), Status: bookingModel.StatusCheckedOut},
		}, nil)

		res, err := svc.RoomDay(context.Background(), "room-1", "2025-01-10")
		require.NoError(t, err)
		assert.True(t, res.Booked)
		assert.True(t, res.IsCheckOut)
		assert.Equal(t, availability.CellCheckOut, res.State)
	})
}

func TestAvailabilityService_RoomDay_SkipsReleasedStays(t *testing.T) {
	rooms, bookings, _, svc := setup(t)

	rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(calendarRooms[0], nil)
	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			_, args := filter.GetWhereClause()
			assert.NotContains(t, args, "status_3")

			for _, status := range []string{bookingModel.StatusCancelled, bookingModel.StatusNoShow} {
				for _, value := range args {
					assert.NotEqual(t, status, value)
				}
			}

			// a cancelled stay on this date was excluded by the repository
			return []bookingModel.Booking{}, nil
		})

	res, err := svc.RoomDay(context.Background(), "room-1", "2025-01-10")
	require.NoError(t, err)
	assert.False(t, res.Booked)
	assert.Equal(t, availability.CellAvailable, res.State)
}

func TestAvailabilityService_Navigate(t *testing.T) {
	_, _, _, svc := setup(t)

	res, err := svc.Navigate(context.Background(), dto.NavigateRequest{Anchor: "2025-01-31", View: availability.ViewMonth, Direction: availability.DirectionNext})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", res.Anchor)
	assert.Len(t, res.Days, 28)
}

func TestAvailabilityService_SelectableRooms(t *testing.T) {
	all := []roomModel.Room{
		{ID: "room-1", Status: roomModel.StatusAvailable},
		{ID: "room-2", Status: roomModel.StatusOccupied},
	}

	t.Run("without dates uses room status", func(t *testing.T) {
		rooms, _, _, svc := setup(t)

		rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(all, nil)

		res, err := svc.SelectableRooms(context.Background(), dto.SelectableRoomsRequest{})
		require.NoError(t, err)
		require.Len(t, res.Rooms, 1)
		assert.Equal(t, "room-1", res.Rooms[0].ID)
	})

	t.Run("with dates uses bookings", func(t *testing.T) {
		rooms, bookings, _, svc := setup(t)

		rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(all, nil)
		bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
			{ID: "b1", RoomID: "room-1", CheckIn: day("2025-01-09"), CheckOut: day("2025-01-12"), Status: bookingModel.StatusConfirmed},
		}, nil)

		res, err := svc.SelectableRooms(context.Background(), dto.SelectableRoomsRequest{CheckIn: "2025-01-10", CheckOut: "2025-01-11"})
		require.NoError(t, err)
		require.Len(t, res.Rooms, 1)
		assert.Equal(t, "room-2", res.Rooms[0].ID)
		assert.Equal(t, "2025-01-10", res.CheckIn)
	})

	t.Run("reversed dates", func(t *testing.T) {
		rooms, _, _, svc := setup(t)

		rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(all, nil)

		_, err := svc.SelectableRooms(context.Background(), dto.SelectableRoomsRequest{CheckIn: "2025-01-11", CheckOut: "2025-01-10"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
