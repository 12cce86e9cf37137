package worker

import (
	"context"
	"fmt"

	"pms/config"
	"pms/infras/kafka"
	"pms/infras/otel"
	authModel "pms/internal/domains/auth/model"
	bookingModel "pms/internal/domains/booking/model"
	cleaningService "pms/internal/domains/cleaning/service"
	"pms/shared/constant"
	"pms/shared/failure"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

const actor = "worker"

type Worker struct {
	cfg      *config.Config
	kafka    kafka.Client
	cleaning cleaningService.Cleaning
	otel     otel.Otel
}

func New(cfg *config.Config, kafka kafka.Client, cleaning cleaningService.Cleaning, otel otel.Otel) *Worker {
	return &Worker{
		cfg:      cfg,
		kafka:    kafka,
		cleaning: cleaning,
		otel:     otel,
	}
}

// Run consumes the booking and notification topics until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topics.Booking, w.HandleBookingEvent)
	})

	group.Go(func() error {
		return w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.Topics.Notification, w.HandleNotification)
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("worker stopped: %w", err)
	}

	return nil
}

// Close flushes pending producers and releases the broker connections.
func (w *Worker) Close() error {
	if err := w.kafka.Close(); err != nil {
		return fmt.Errorf("failed to close kafka client: %w", err)
	}

	return nil
}

// HandleBookingEvent queues housekeeping when a guest checks out.
// Malformed or permanently invalid messages are acknowledged so they do not block the partition.
func (w *Worker) HandleBookingEvent(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Booking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[bookingModel.Event](message)
	if err != nil {
		log.Error().Err(err).Str("key", string(message.Key)).Msg("dropping undecodable booking event")

		return nil
	}

	scope.SetAttributes(map[string]any{
		"event.type":       event.Type,
		"event.booking_id": event.BookingID,
	})

	if event.Type != bookingModel.EventCheckedOut {
		return nil
	}

	ctx = context.WithValue(ctx, constant.ContextKeyUserID, actor)

	created, err := w.cleaning.CreateForCheckout(ctx, event.RoomID, event.BookingID)
	if err != nil {
		if failure.IsClient(err) {
			log.Warn().Err(err).Str("roomID", event.RoomID).Msg("skipping checkout cleaning task")

			return nil
		}

		return fmt.Errorf("failed to create checkout cleaning task: %w", err)
	}

	if created {
		log.Info().Str("roomID", event.RoomID).Str("bookingID", event.BookingID).Msg("checkout cleaning task created")
	}

	return nil
}

// HandleNotification delivers auth notifications. Mail delivery is not configured, so
// reset links are written to the log for the operator.
func (w *Worker) HandleNotification(ctx context.Context, message kafkaGo.Message) (err error) {
	_, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Notification")
	defer scope.End()

	event, err := kafka.Decode[authModel.Event](message)
	if err != nil {
		log.Error().Err(err).Str("key", string(message.Key)).Msg("dropping undecodable notification")

		return nil
	}

	if event.Type != authModel.EventPasswordResetRequested {
		return nil
	}

	log.Info().
		Str("userID", event.UserID).
		Str("email", event.Email).
		Time("expiresAt", event.ExpiresAt).
		Msg("password reset requested")
	log.Debug().Str("email", event.Email).Str("token", event.Token).Msg("password reset token")

	return nil
}
