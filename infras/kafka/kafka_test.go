package kafka_test

import (
	"encoding/json"
	"safari/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "R-101",
		Value: map[string]string{"status": "Booked"},
	}

	kafkaMsg, err := msg.ToKafkaMessage("safari.room.status_changed")

	assert.NoError(t, err)
	assert.Equal(t, "safari.room.status_changed", kafkaMsg.Topic)
	assert.Equal(t, []byte("R-101"), kafkaMsg.Key)

	var decoded map[string]string
	assert.NoError(t, json.Unmarshal(kafkaMsg.Value, &decoded))
	assert.Equal(t, "Booked", decoded["status"])
}

func TestMessage_ToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{
		Key:   "bad",
		Value: make(chan int),
	}

	_, err := msg.ToKafkaMessage("topic")

	assert.Error(t, err)
}
