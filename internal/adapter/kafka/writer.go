// Package kafka publishes heavy-wet-snow warning events for the external
// notification layer. Delivery mechanics (push tokens, dedup, retry) live
// in that layer; this adapter only emits the signal.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/lumivahti/snowload-service/internal/domain"
)

// Writer produces warning events to a Kafka topic.
// It implements pipeline.WarningPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the warning topic.
func NewWriter(brokers []string, topic string, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishWarning serializes and publishes one warning event. Keyed by
// postal code so all warnings for a location land on the same partition.
func (w *Writer) PublishWarning(ctx context.Context, event domain.WarningEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a WarningEvent into a Kafka message.
func serializeToMessage(event domain.WarningEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize warning event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.PostalCode),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "city", Value: []byte(event.City)},
			{Key: "issued_at", Value: []byte(event.IssuedAt.Format(time.RFC3339))},
		},
	}, nil
}
