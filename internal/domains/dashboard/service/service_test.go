package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pms/config"
	"pms/infras/otel/mocks"
	bookingMocks "pms/internal/domains/booking/mocks"
	bookingModel "pms/internal/domains/booking/model"
	"pms/internal/domains/dashboard"
	"pms/internal/domains/dashboard/model/dto"
	"pms/internal/domains/dashboard/service"
	roomMocks "pms/internal/domains/room/mocks"
	roomModel "pms/internal/domains/room/model"
	cacheMocks "pms/shared/cache/mocks"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	rooms    *roomMocks.MockRoom
	bookings *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
	svc      service.Dashboard
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		rooms:    roomMocks.NewMockRoom(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Hotel.AverageStayNights = 3
	cfg.Hotel.UpcomingWindowDays = 7
	cfg.Hotel.UpcomingListSize = 5
	cfg.Hotel.Currency = "USD"

	f.svc = service.New(f.rooms, f.bookings, cfg, f.cache, mocks.NewOtel())

	return f
}

func (f fixture) miss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
}

func TestDashboardService_Metrics(t *testing.T) {
	today := timezone.CurrentDate()

	t.Run("computes the cards", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "dashboard:metrics:today:"+gDto.FormatDay(today), gomock.Any()).Return(errors.New("miss"))
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{
			{ID: "r1", Status: roomModel.StatusOccupied},
			{ID: "r2", Status: roomModel.StatusOccupied},
			{ID: "r3", Status: roomModel.StatusAvailable},
			{ID: "r4", Status: roomModel.StatusCleaning},
			{ID: "r5", Status: roomModel.StatusAvailable},
		}, nil)
		f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
				where, _ := filter.GetWhereClause()
				assert.Contains(t, where, "bookings.status IN")

				return []bookingModel.Booking{
					{ID: "b1", RoomID: "r1", Status: bookingModel.StatusCheckedIn, CheckIn: today.AddDate(0, 0, -1), CheckOut: today.AddDate(0, 0, 2), TotalAmount: 600},
				}, nil
			})

		res, err := f.svc.Metrics(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, dashboard.FilterToday, res.Filter)
		assert.Equal(t, "USD", res.Currency)
		assert.InDelta(t, 40.0, res.OccupancyRate, 0.0001)
		assert.InDelta(t, 20.0, res.BookedOccupancyRate, 0.0001)
		assert.InDelta(t, 200.0, res.Revenue, 0.001)
		assert.Equal(t, 1, res.PendingCleanings)
	})

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "dashboard:metrics:last7days:"+gDto.FormatDay(today), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dest any) error {
				res, _ := dest.(*dto.MetricsResponse)
				res.Filter = dashboard.FilterLast7Days
				res.TotalRooms = 12

				return nil
			})

		res, err := f.svc.Metrics(context.Background(), dashboard.FilterLast7Days)
		require.NoError(t, err)
		assert.Equal(t, 12, res.TotalRooms)
	})

	t.Run("unknown filter", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Metrics(context.Background(), "lastYear")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)
		f.miss()
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.Metrics(context.Background(), dashboard.FilterToday)
		assert.ErrorContains(t, err, "failed to get rooms")
	})
}

func TestDashboardService_Upcoming(t *testing.T) {
	today := timezone.CurrentDate()

	f := newFixture(t)
	f.miss()
	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, today, args["upcoming_from"])

			bookings := make([]bookingModel.Booking, 0, 7)
			for i := 7; i >= 1; i-- {
				bookings = append(bookings, bookingModel.Booking{
					ID:       string(rune('a' + i)),
					Status:   bookingModel.StatusConfirmed,
					CheckIn:  today.AddDate(0, 0, i),
					CheckOut: today.AddDate(0, 0, i+1),
				})
			}

			return bookings, nil
		})

	res, err := f.svc.Upcoming(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Bookings, 5)
	assert.Equal(t, gDto.FormatDay(today.AddDate(0, 0, 1)), res.Bookings[0].CheckIn)
	assert.Equal(t, gDto.FormatDay(today.AddDate(0, 0, 5)), res.Bookings[4].CheckIn)
}

func TestDashboardService_Summary(t *testing.T) {
	f := newFixture(t)
	f.miss()
	f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{{ID: "r1", Status: roomModel.StatusOccupied}}, nil)
	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
		{ID: "b1", RoomID: "r1", Status: bookingModel.StatusCheckedOut, TotalAmount: 90},
	}, nil)

	res, err := f.svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, timezone.CurrentDate().Format("2006-01"), res.Month)
	assert.InDelta(t, 900, res.Revenue, 0.001)
	assert.InDelta(t, 30, res.AverageDailyRate, 0.001)
	assert.Equal(t, 1, res.OccupiedRooms)
	assert.Equal(t, "USD", res.Currency)
}

func TestDashboardService_Occupancy(t *testing.T) {
	t.Run("defaults to thirty days", func(t *testing.T) {
		f := newFixture(t)
		f.miss()
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{{ID: "r1"}}, nil)
		f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.Occupancy(context.Background(), dto.OccupancyRequest{})
		require.NoError(t, err)

		assert.Equal(t, dto.DefaultSeriesDays, res.Days)
		require.Len(t, res.Points, dto.DefaultSeriesDays)
		assert.Equal(t, gDto.FormatDay(timezone.CurrentDate()), res.Points[len(res.Points)-1].Date)
	})

	t.Run("rejects out of range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Occupancy(context.Background(), dto.OccupancyRequest{Days: 365})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
