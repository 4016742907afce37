package services

//go:generate mockgen -source=events.go -destination=events_mock_test.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Converter performs a single conversion.
type Converter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResponse, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ConversionEventService wraps a Converter and publishes every successful
// conversion to Kafka. Publishing failures are logged and never change the result.
type ConversionEventService struct {
	next        Converter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewConversionEventService creates a new ConversionEventService.
// A nil kafkaWriter disables publishing.
func NewConversionEventService(next Converter, kafkaWriter KafkaWriter) *ConversionEventService {
	return &ConversionEventService{
		next:        next,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Convert delegates to the wrapped converter and publishes the outcome on success.
func (s *ConversionEventService) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResponse, error) {
	resp, err := s.next.Convert(ctx, req)
	if err != nil {
		return nil, err
	}
	s.publishConversion(ctx, models.NewConversionEvent(resp, s.now()))
	return resp, nil
}

// publishConversion publishes a conversion event to Kafka.
func (s *ConversionEventService) publishConversion(ctx context.Context, event models.ConversionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal conversion event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish conversion event to Kafka", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Conversion event published to Kafka",
		"event_id", event.EventID, "from", event.From, "to", event.To)
}
