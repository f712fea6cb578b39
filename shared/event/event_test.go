package event_test

import (
	"context"
	"errors"
	"testing"

	"safari/config"
	kafkaMocks "safari/infras/kafka/mocks"
	natsMocks "safari/infras/nats/mocks"
	otelMocks "safari/infras/otel/mocks"
	"safari/shared/event"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig(driver string) *config.Config {
	cfg := &config.Config{}
	cfg.Event.Driver = driver
	cfg.Event.TopicPrefix = "safari"

	return cfg
}

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name      string
		driver    string
		setupMock func(k *kafkaMocks.MockClient, n *natsMocks.MockClient)
		wantErr   bool
	}{
		{
			name:   "kafka driver sends prefixed topic",
			driver: event.DriverKafka,
			setupMock: func(k *kafkaMocks.MockClient, _ *natsMocks.MockClient) {
				k.EXPECT().
					SendMessages(gomock.Any(), "safari.room.status_changed", gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "nats driver publishes prefixed subject",
			driver: event.DriverNATS,
			setupMock: func(_ *kafkaMocks.MockClient, n *natsMocks.MockClient) {
				n.EXPECT().
					Publish(gomock.Any(), "safari.room.status_changed", gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "none driver drops the event",
			driver:    event.DriverNone,
			setupMock: func(_ *kafkaMocks.MockClient, _ *natsMocks.MockClient) {},
		},
		{
			name:   "broker failure is returned",
			driver: event.DriverKafka,
			setupMock: func(k *kafkaMocks.MockClient, _ *natsMocks.MockClient) {
				k.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
			wantErr: true,
		},
		{
			name:      "unknown driver",
			driver:    "carrier-pigeon",
			setupMock: func(_ *kafkaMocks.MockClient, _ *natsMocks.MockClient) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			kafkaClient := kafkaMocks.NewMockClient(ctrl)
			natsClient := natsMocks.NewMockClient(ctrl)
			tt.setupMock(kafkaClient, natsClient)

			publisher := event.New(newConfig(tt.driver), kafkaClient, natsClient, otelMocks.NewOtel())

			err := publisher.Publish(context.Background(), event.TopicRoomStatusChanged, "R-101", map[string]string{"to": "Booked"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
