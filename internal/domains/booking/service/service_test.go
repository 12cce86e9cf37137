package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"pms/config"
	kafkaMocks "pms/infras/kafka/mocks"
	"pms/infras/otel/mocks"
	bookingMocks "pms/internal/domains/booking/mocks"
	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/model/dto"
	"pms/internal/domains/booking/service"
	guestMocks "pms/internal/domains/guest/mocks"
	guestModel "pms/internal/domains/guest/model"
	roomMocks "pms/internal/domains/room/mocks"
	roomModel "pms/internal/domains/room/model"
	cacheMocks "pms/shared/cache/mocks"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *bookingMocks.MockBooking
	rooms *roomMocks.MockRoom
	guest *guestMocks.MockGuest
	kafka *kafkaMocks.MockClient
	svc   service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  bookingMocks.NewMockBooking(ctrl),
		rooms: roomMocks.NewMockRoom(ctrl),
		guest: guestMocks.NewMockGuest(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.Booking = "pms.booking.events"

	f.svc = service.New(f.repo, f.rooms, f.guest, cfg, mockCache, mocks.NewOtel(), f.kafka)

	return f
}

// runTx executes the transaction body with a nil handle; the mocked repositories ignore it.
func (f fixture) runTx() {
	f.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
		return fn(nil)
	})
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func day(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

var (
	standardRoom = roomModel.Room{ID: "room-1", Number: "101", Capacity: 2, BasePrice: 99, Status: roomModel.StatusAvailable}
	johnSmith    = guestModel.Guest{ID: "guest-1", Name: "John Smith", Email: "john@example.com", Phone: "555-0101"}
)

func TestBookingService_Create(t *testing.T) {
	base := dto.CreateBookingRequest{RoomID: "room-1", GuestID: "guest-1", CheckIn: "2025-01-10", CheckOut: "2025-01-13", Adults: 2}

	tests := []struct {
		name      string
		mutate    func(req *dto.CreateBookingRequest)
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "total defaults to base price times nights",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom, nil)
				f.guest.EXPECT().Get(gomock.Any(), gomock.Any()).Return(johnSmith, nil)
				f.runTx()
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
					assert.InDelta(t, 297.0, booking.TotalAmount, 0.001)
					assert.Equal(t, "John Smith", booking.GuestName)
					assert.Equal(t, model.StatusConfirmed, booking.Status)
					assert.Equal(t, day("2025-01-10"), booking.CheckIn)

					return nil
				})
			},
		},
		{
			name:   "walk-in checks the room in",
			mutate: func(req *dto.CreateBookingRequest) { req.Status = model.StatusCheckedIn },
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom, nil)
				f.guest.EXPECT().Get(gomock.Any(), gomock.Any()).Return(johnSmith, nil)
				f.runTx()
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusOccupied, fields[roomModel.FieldStatus])

						return nil
					})
			},
		},
		{
			name: "overlap is a conflict",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom, nil)
				f.guest.EXPECT().Get(gomock.Any(), gomock.Any()).Return(johnSmith, nil)
				f.runTx()
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "check-out must follow check-in",
			mutate:    func(req *dto.CreateBookingRequest) { req.CheckOut = req.CheckIn },
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "too many guests",
			mutate: func(req *dto.CreateBookingRequest) { req.Children = 1 },
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room under maintenance",
			setupMock: func(f fixture) {
				room := standardRoom
				room.Status = roomModel.StatusMaintenance

				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown guest",
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom, nil)
				f.guest.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			req := base
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			res, err := f.svc.Create(userCtx(), req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 3, res.Nights)
			assert.Equal(t, "2025-01-13", res.CheckOut)
		})
	}
}

func TestBookingService_Transition(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		target     string
		roomStatus string
		wantCode   int
	}{
		{name: "check in occupies room", current: model.StatusConfirmed, target: model.StatusCheckedIn, roomStatus: roomModel.StatusOccupied},
		{name: "check out flags cleaning", current: model.StatusCheckedIn, target: model.StatusCheckedOut, roomStatus: roomModel.StatusCleaning},
		{name: "cancel leaves room alone", current: model.StatusConfirmed, target: model.StatusCancelled},
		{name: "cannot check out a confirmed booking", current: model.StatusConfirmed, target: model.StatusCheckedOut, wantCode: http.StatusBadRequest},
		{name: "cannot cancel a stay in progress", current: model.StatusCheckedIn, target: model.StatusCancelled, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
				ID: "booking-1", RoomID: "room-2", Status: tt.current,
				CheckIn: day("2025-01-09"), CheckOut: day("2025-01-12"),
			}, nil)

			if tt.wantCode == 0 {
				f.runTx()
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			if tt.roomStatus != "" {
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.roomStatus, fields[roomModel.FieldStatus])

						return nil
					})
			}

			res, err := f.svc.Transition(userCtx(), "booking-1", tt.target)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.target, res.Status)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	current := model.Booking{
		ID: "booking-4", RoomID: "room-1", Status: model.StatusConfirmed, Adults: 2,
		CheckIn: day("2025-01-11"), CheckOut: day("2025-01-15"),
	}

	t.Run("moving dates re-checks overlap", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom, nil)
		f.runTx()
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (bool, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "booking-4", args["exclude_id"])
				assert.Equal(t, day("2025-01-18"), args["range_to"])

				return true, nil
			})

		err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{CheckOut: "2025-01-18"}, "booking-4")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("payment change skips overlap check", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom, nil)
		f.runTx()
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.PaymentPaid, fields[model.FieldPaymentStatus])

				return nil
			})

		require.NoError(t, f.svc.Update(userCtx(), dto.UpdateBookingRequest{PaymentStatus: model.PaymentPaid}, "booking-4"))
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{}, "booking-4")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("refuses moving into a room under maintenance", func(t *testing.T) {
		f := newFixture(t)

		closed := roomModel.Room{ID: "room-3", Number: "103", Capacity: 2, Status: roomModel.StatusMaintenance}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closed, nil)

		err := f.svc.Update(userCtx(), dto.UpdateBookingRequest{RoomID: "room-3"}, "booking-4")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("moving an in-house guest swaps room statuses", func(t *testing.T) {
		f := newFixture(t)

		inHouse := current
		inHouse.Status = model.StatusCheckedIn
		target := roomModel.Room{ID: "room-2", Number: "102", Capacity: 2, Status: roomModel.StatusAvailable}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inHouse, nil)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(target, nil)
		f.runTx()
		f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		statuses := map[string]any{}
		f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
				_, args := filter.GetWhereClause()
				statuses[args[roomModel.FieldID].(string)] = fields[roomModel.FieldStatus]

				return nil
			})

		require.NoError(t, f.svc.Update(userCtx(), dto.UpdateBookingRequest{RoomID: "room-2"}, "booking-4"))
		assert.Equal(t, map[string]any{"room-1": roomModel.StatusCleaning, "room-2": roomModel.StatusOccupied}, statuses)
	})
}

func TestBookingService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		booking    model.Booking
		roomStatus string
		wantCode   int
	}{
		{name: "unknown booking", wantCode: http.StatusNotFound},
		{name: "confirmed booking leaves room alone", booking: model.Booking{ID: "booking-1", RoomID: "room-1", Status: model.StatusConfirmed}},
		{
			name:       "in-house booking frees the room",
			booking:    model.Booking{ID: "booking-1", RoomID: "room-1", Status: model.StatusCheckedIn},
			roomStatus: roomModel.StatusCleaning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)

			if tt.wantCode == 0 {
				f.runTx()
				f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			if tt.roomStatus != "" {
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.roomStatus, fields[roomModel.FieldStatus])

						return nil
					})
			}

			err := f.svc.Delete(userCtx(), "booking-1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
