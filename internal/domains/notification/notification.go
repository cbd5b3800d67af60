package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/sink_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"seatsafe/config"
	"seatsafe/infras/kafka"
	"seatsafe/infras/otel"
	"seatsafe/shared/constant"
)

const (
	TypeBookingCreated = "booking_created"
	TypeBookingStatus  = "booking_status"
	TypePayoutRequest  = "payout_request"
)

// Payload is the event shape consumed by the downstream notification worker.
type Payload struct {
	RecipientID string `json:"recipient_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Type        string `json:"type"`
}

// Sink delivers user-facing notifications. Delivery is fire-and-forget: a
// failed publish must never fail the operation that triggered it, so Notify
// returns nothing and the implementation logs failures itself.
type Sink interface {
	Notify(ctx context.Context, recipientID, title, body, typeTag string)
}

type kafkaSink struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewKafkaSink(client kafka.Client, cfg *config.Config, otel otel.Otel) Sink {
	return &kafkaSink{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *kafkaSink) Notify(ctx context.Context, recipientID, title, body, typeTag string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Notify")
	defer scope.End()

	payload := Payload{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Type:        typeTag,
	}

	err := s.client.SendMessages(ctx, s.cfg.Kafka.NotificationsTopic, kafka.Message{
		Key:   recipientID,
		Value: payload,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("recipientID", recipientID).Str("type", typeTag).Msg("failed to publish notification")
	}
}
