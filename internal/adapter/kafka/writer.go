// Package kafka publishes classification records for downstream consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
)

// Writer produces one message per classification record to a Kafka topic.
// It implements pipeline.RecordExporter and is optional: the tool runs
// without a broker unless one is configured.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the record topic.
func NewWriter(brokers []string, topic string, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Write serializes and publishes a single classification record.
func (w *Writer) Write(ctx context.Context, rec domain.ClassificationRecord) error {
	msg, err := serializeRecord(rec)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish record %d: %w", rec.Index, err)
	}
	return nil
}

// Close flushes pending messages and releases the producer.
func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeRecord marshals a ClassificationRecord into a Kafka message keyed
// by the spreadsheet row index.
func serializeRecord(rec domain.ClassificationRecord) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize record %d: %w", rec.Index, err)
	}
	return kafkago.Message{
		Key:   []byte(strconv.Itoa(rec.Index)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "verdict", Value: []byte(rec.Verdict)},
			{Key: "processed_at", Value: []byte(rec.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}
