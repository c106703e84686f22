package kafka_test

import (
	"cowork/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:     "booking.created",
		Value:   map[string]any{"booking_id": "b1", "credits_charged": "2"},
		Headers: map[string]string{"room_id": "r1"},
	}

	out, err := msg.ToKafkaMessage("booking.events")

	assert.NoError(t, err)
	assert.Equal(t, "booking.events", out.Topic)
	assert.Equal(t, []byte("booking.created"), out.Key)
	assert.JSONEq(t, `{"booking_id":"b1","credits_charged":"2"}`, string(out.Value))
	assert.Len(t, out.Headers, 1)
	assert.Equal(t, "room_id", out.Headers[0].Key)
	assert.Equal(t, []byte("r1"), out.Headers[0].Value)
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("booking.events")

	assert.Error(t, err)
}
