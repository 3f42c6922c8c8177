package publishers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/updown/internal/logger"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=publishers

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaExporter writes status transitions as JSON messages keyed by site id.
type KafkaExporter struct {
	writer KafkaWriter
}

// NewKafkaExporter creates a new KafkaExporter.
func NewKafkaExporter(writer KafkaWriter) *KafkaExporter {
	return &KafkaExporter{writer: writer}
}

// NewKafkaWriter builds a writer for topic balanced by message key.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Export publishes record. A missing writer is logged and skipped.
func (e *KafkaExporter) Export(ctx context.Context, record models.TransitionRecord) error {
	if e.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping export", "site_id", record.SiteID)
		return nil
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal transition: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(record.SiteID),
		Value: data,
	}
	if err := e.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to export transition to Kafka", "site_id", record.SiteID, "error", err)
		return fmt.Errorf("write transition: %w", err)
	}

	logger.Log.Infow("Transition exported to Kafka", "site_id", record.SiteID, "kind", record.Kind, "status", record.Status)
	return nil
}

// Close releases the underlying writer.
func (e *KafkaExporter) Close() error {
	if e.writer == nil {
		return nil
	}
	return e.writer.Close()
}
