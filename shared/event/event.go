package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"safari/config"
	"safari/infras/kafka"
	"safari/infras/nats"
	"safari/infras/otel"
	"safari/shared/constant"
	"safari/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DriverKafka = "kafka"
	DriverNATS  = "nats"
	DriverNone  = "none"
)

const (
	TopicRoomStatusChanged   = "room.status_changed"
	TopicBookingCheckedOut   = "booking.checked_out"
	TopicReservationConfirm  = "reservation.confirmed"
	TopicReservationCheckIn  = "reservation.checked_in"
	TopicReservationCheckOut = "reservation.checked_out"
	TopicQuotationCreated    = "quotation.created"
	TopicInquirySubmitted    = "inquiry.submitted"
)

const otelAttrTopic = "event.topic"

// Envelope is the wire shape of every domain event.
type Envelope struct {
	Topic      string    `json:"topic"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type publisherImpl struct {
	driver string
	prefix string
	kafka  kafka.Client
	nats   nats.Client
	otel   otel.Otel
}

func New(cfg *config.Config, kafkaClient kafka.Client, natsClient nats.Client, otl otel.Otel) Publisher {
	driver := cfg.Event.Driver
	if driver == "" {
		driver = DriverNone
	}

	log.Info().Str("driver", driver).Msg("Domain event publisher initialized")

	return &publisherImpl{
		driver: driver,
		prefix: cfg.Event.TopicPrefix,
		kafka:  kafkaClient,
		nats:   natsClient,
		otel:   otl,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, topic, key string, payload any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	fullTopic := p.topic(topic)
	scope.SetAttribute(otelAttrTopic, fullTopic)

	envelope := Envelope{
		Topic:      fullTopic,
		Key:        key,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}

	switch p.driver {
	case DriverKafka:
		err = p.kafka.SendMessages(ctx, fullTopic, kafka.Message{Key: key, Value: envelope})
	case DriverNATS:
		err = p.nats.Publish(ctx, fullTopic, envelope)
	case DriverNone:
		log.Debug().Str("topic", fullTopic).Str("key", key).Msg("event publishing disabled, dropping event")

		return nil
	default:
		return fmt.Errorf("unknown event driver %q", p.driver)
	}

	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", fullTopic, err)
	}

	return nil
}

func (p *publisherImpl) topic(name string) string {
	if p.prefix == "" {
		return name
	}

	return p.prefix + "." + name
}

// PublishAsync fires the event on a detached context and only logs failures.
func PublishAsync(ctx context.Context, publisher Publisher, topic, key string, payload any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := publisher.Publish(c, topic, key, payload); err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish event")
		}
	}()
}
