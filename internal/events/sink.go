// Package events records usage events. Delivery is fire-and-forget: callers
// go through Track, which never returns an error.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	CategoryZakat = "zakat"
	CategoryNisab = "nisab"
)

const (
	EventCalculationRecorded = "zakat_calculation_recorded"
	EventPaymentRecorded     = "zakat_payment_recorded"
	EventPaymentVerified     = "zakat_payment_verified"
	EventNisabRatesUpdated   = "nisab_rates_updated"
)

// Sink accepts usage events.
type Sink interface {
	Record(ctx context.Context, name, category string, properties map[string]any) error
}

// Track records an event and logs any failure instead of returning it.
func Track(ctx context.Context, sink Sink, logger *slog.Logger, name, category string, properties map[string]any) {
	if sink == nil {
		return
	}
	if err := sink.Record(ctx, name, category, properties); err != nil && logger != nil {
		logger.WarnContext(ctx, "event emission failed",
			slog.String("event", name),
			slog.String("category", category),
			slog.Any("error", err),
		)
	}
}

// LogSink writes events to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(ctx context.Context, name, category string, properties map[string]any) error {
	s.logger.InfoContext(ctx, "event",
		slog.String("event", name),
		slog.String("category", category),
		slog.Any("properties", properties),
	)
	return nil
}

// RedisStreamSink appends events to a redis stream.
type RedisStreamSink struct {
	client *redis.Client
	stream string
	now    func() time.Time
}

func NewRedisStreamSink(client *redis.Client, stream string) *RedisStreamSink {
	return &RedisStreamSink{client: client, stream: stream, now: time.Now}
}

func (s *RedisStreamSink) Record(ctx context.Context, name, category string, properties map[string]any) error {
	props, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("encode event properties: %w", err)
	}

	return s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			"event":       name,
			"category":    category,
			"properties":  string(props),
			"recorded_at": s.now().UTC().Format(time.RFC3339Nano),
		},
	}).Err()
}
