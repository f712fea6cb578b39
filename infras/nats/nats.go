package nats

//go:generate go run go.uber.org/mock/mockgen -source=./nats.go -destination=./mocks/nats_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"safari/config"
	"sync"

	natsGo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

var ErrNotConfigured = errors.New("nats url is not configured")

type Client interface {
	Publish(ctx context.Context, subject string, value any) error
	Subscribe(subject string, handler func(data []byte)) error
	Close()
}

type natsClientImpl struct {
	url  string
	mu   sync.Mutex
	conn *natsGo.Conn
}

// New returns a client that dials lazily, so the service boots even when NATS is not the selected driver.
func New(config *config.Config) Client {
	return &natsClientImpl{
		url: config.External.NATS.URL,
	}
}

func (n *natsClientImpl) connection() (*natsGo.Conn, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil && !n.conn.IsClosed() {
		return n.conn, nil
	}

	if n.url == "" {
		return nil, ErrNotConfigured
	}

	conn, err := natsGo.Connect(n.url, natsGo.Name("safari"), natsGo.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Info().Str("url", n.url).Msg("Connected to NATS")

	n.conn = conn

	return conn, nil
}

func (n *natsClientImpl) Publish(ctx context.Context, subject string, value any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context finished before publish: %w", err)
	}

	conn, err := n.connection()
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to marshal NATS message")

		return fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	if err = conn.Publish(subject, data); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to publish message to NATS.")

		return fmt.Errorf("failed to publish message to NATS: %w", err)
	}

	log.Info().Str("subject", subject).Msg("Published message successfully.")

	return nil
}

func (n *natsClientImpl) Subscribe(subject string, handler func(data []byte)) error {
	conn, err := n.connection()
	if err != nil {
		return err
	}

	_, err = conn.Subscribe(subject, func(msg *natsGo.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	return nil
}

func (n *natsClientImpl) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil {
		n.conn.Close()
		n.conn = nil
	}
}
