package events

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"dreamtrip/internal/models/request_models"
)

const (
	TopicTripEvents = "trip_events"

	EventTripCreated   = "trip_created"
	EventTripCompleted = "trip_completed"
	EventTripFailed    = "trip_failed"
)

// Notifier publishes trip lifecycle events. Publishes are fire-and-forget
// from the orchestrator's point of view: the caller logs a returned error
// and continues.
type Notifier interface {
	TripCreated(ctx context.Context, tripID int64, req request_models.TripRequest) error
	TripCompleted(ctx context.Context, tripID int64, status string) error
	TripFailed(ctx context.Context, tripID int64, reason string) error
}

// eventEnvelope is the wire shape on the trip_events topic.
type eventEnvelope struct {
	EventType string                 `json:"event_type"`
	Data      map[string]interface{} `json:"data"`
	Timestamp string                 `json:"timestamp"`
}

// messageWriter is the subset of *kafka.Writer the notifier uses; tests
// substitute an in-memory implementation.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaNotifier struct {
	writer messageWriter
}

func NewKafkaNotifier(broker string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(broker),
			Topic:                  TopicTripEvents,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			MaxAttempts:            3,
			Compression:            kafka.Gzip,
			AllowAutoTopicCreation: true,
		},
	}
}

func (n *KafkaNotifier) Close() {
	if w, ok := n.writer.(*kafka.Writer); ok {
		if err := w.Close(); err != nil {
			log.Printf("Error closing Kafka writer: %v", err)
		}
	}
}

func (n *KafkaNotifier) TripCreated(ctx context.Context, tripID int64, req request_models.TripRequest) error {
	return n.publish(ctx, tripID, EventTripCreated, map[string]interface{}{
		"trip_id":     tripID,
		"origin":      req.Origin,
		"destination": req.Destination,
		"duration":    req.Duration,
		"preferences": req.Preferences,
	})
}

func (n *KafkaNotifier) TripCompleted(ctx context.Context, tripID int64, status string) error {
	return n.publish(ctx, tripID, EventTripCompleted, map[string]interface{}{
		"trip_id": tripID,
		"status":  status,
	})
}

func (n *KafkaNotifier) TripFailed(ctx context.Context, tripID int64, reason string) error {
	return n.publish(ctx, tripID, EventTripFailed, map[string]interface{}{
		"trip_id": tripID,
		"error":   reason,
	})
}

func (n *KafkaNotifier) publish(ctx context.Context, tripID int64, eventType string, data map[string]interface{}) error {
	value, err := json.Marshal(eventEnvelope{
		EventType: eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	// Keyed by trip id so one trip's events stay in partition order.
	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(tripID, 10)),
		Value: value,
	})
}
