package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pms/config"
	"pms/infras/kafka"
	kafkaMocks "pms/infras/kafka/mocks"
	"pms/infras/otel/mocks"
	authModel "pms/internal/domains/auth/model"
	bookingModel "pms/internal/domains/booking/model"
	cleaningMocks "pms/internal/domains/cleaning/service/mocks"
	"pms/internal/worker"
	"pms/shared/failure"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingMessage(t *testing.T, event bookingModel.Event) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafkaGo.Message{Key: []byte(event.RoomID), Value: value}
}

func TestHandleBookingEvent(t *testing.T) {
	checkedOut := bookingModel.Event{Type: bookingModel.EventCheckedOut, BookingID: "booking-1", RoomID: "room-1"}

	tests := []struct {
		name    string
		message func(t *testing.T) kafkaGo.Message
		setup   func(cleaning *cleaningMocks.MockCleaning)
		wantErr bool
	}{
		{
			name:    "checkout creates task",
			message: func(t *testing.T) kafkaGo.Message { return bookingMessage(t, checkedOut) },
			setup: func(cleaning *cleaningMocks.MockCleaning) {
				cleaning.EXPECT().CreateForCheckout(gomock.Any(), "room-1", "booking-1").Return(true, nil)
			},
		},
		{
			name:    "existing open task is acknowledged",
			message: func(t *testing.T) kafkaGo.Message { return bookingMessage(t, checkedOut) },
			setup: func(cleaning *cleaningMocks.MockCleaning) {
				cleaning.EXPECT().CreateForCheckout(gomock.Any(), "room-1", "booking-1").Return(false, nil)
			},
		},
		{
			name: "other event types are ignored",
			message: func(t *testing.T) kafkaGo.Message {
				return bookingMessage(t, bookingModel.Event{Type: bookingModel.EventCheckedIn, RoomID: "room-1"})
			},
			setup: func(*cleaningMocks.MockCleaning) {},
		},
		{
			name:    "malformed payload is dropped",
			message: func(*testing.T) kafkaGo.Message { return kafkaGo.Message{Value: []byte("{")} },
			setup:   func(*cleaningMocks.MockCleaning) {},
		},
		{
			name:    "missing room is not retried",
			message: func(t *testing.T) kafkaGo.Message { return bookingMessage(t, checkedOut) },
			setup: func(cleaning *cleaningMocks.MockCleaning) {
				cleaning.EXPECT().CreateForCheckout(gomock.Any(), "room-1", "booking-1").Return(false, failure.NotFound("room"))
			},
		},
		{
			name:    "storage failure is retried",
			message: func(t *testing.T) kafkaGo.Message { return bookingMessage(t, checkedOut) },
			setup: func(cleaning *cleaningMocks.MockCleaning) {
				cleaning.EXPECT().CreateForCheckout(gomock.Any(), "room-1", "booking-1").Return(false, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cleaning := cleaningMocks.NewMockCleaning(ctrl)
			tt.setup(cleaning)

			w := worker.New(&config.Config{}, kafkaMocks.NewMockClient(ctrl), cleaning, mocks.NewOtel())

			err := w.HandleBookingEvent(context.Background(), tt.message(t))
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHandleNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worker.New(&config.Config{}, kafkaMocks.NewMockClient(ctrl), cleaningMocks.NewMockCleaning(ctrl), mocks.NewOtel())

	value, err := json.Marshal(authModel.Event{
		Type:      authModel.EventPasswordResetRequested,
		UserID:    "user-1",
		Email:     "front@hotel.test",
		Token:     "token",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	require.NoError(t, err)

	assert.NoError(t, w.HandleNotification(context.Background(), kafkaGo.Message{Value: value}))
	assert.NoError(t, w.HandleNotification(context.Background(), kafkaGo.Message{Value: []byte("nope")}))
}

func TestRun_ConsumesBothTopics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "pms-worker"
	cfg.Kafka.Topics.Booking = "pms.booking.events"
	cfg.Kafka.Topics.Notification = "pms.notification.events"

	client.EXPECT().Consume(gomock.Any(), "pms-worker", "pms.booking.events", gomock.Any()).Return(nil)
	client.EXPECT().Consume(gomock.Any(), "pms-worker", "pms.notification.events", gomock.Any()).Return(nil)

	w := worker.New(cfg, client, cleaningMocks.NewMockCleaning(ctrl), mocks.NewOtel())

	assert.NoError(t, w.Run(context.Background()))
}

func TestRun_PropagatesDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	client.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(kafka.ErrDisabled).Times(2)
	client.EXPECT().Close().Return(nil)

	w := worker.New(&config.Config{}, client, cleaningMocks.NewMockCleaning(ctrl), mocks.NewOtel())

	assert.ErrorIs(t, w.Run(context.Background()), kafka.ErrDisabled)
	assert.NoError(t, w.Close())
}
