package kafka_test

import (
	"context"
	"testing"

	"pms/config"
	"pms/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
}

func TestMessage_RoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: payload{BookingID: "booking-1", RoomID: "room-2"}}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), raw.Key)
	assert.JSONEq(t, `{"booking_id":"booking-1","room_id":"room-2"}`, string(raw.Value))

	decoded, err := kafka.Decode[payload](raw)
	require.NoError(t, err)
	assert.Equal(t, "room-2", decoded.RoomID)
}

func TestMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestClient_Disabled(t *testing.T) {
	cfg := &config.Config{}
	client := kafka.New(cfg)

	assert.NoError(t, client.SendMessages(context.Background(), "pms.booking.events", kafka.Message{Key: "k", Value: 1}))
	assert.ErrorIs(t, client.Consume(context.Background(), "", "pms.booking.events", nil), kafka.ErrDisabled)
	assert.NoError(t, client.Close())
}
