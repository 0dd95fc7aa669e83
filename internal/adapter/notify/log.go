package notify

import (
	"context"
	"log/slog"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// LogPublisher only logs events. Used when no transport is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher constructs LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event model.Event) error {
	attrs := []any{
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.Int64("aggregate_id", event.AggregateID),
		slog.String("payload", string(event.Payload)),
	}
	if event.RecipientID != nil {
		attrs = append(attrs, slog.Int64("recipient_id", *event.RecipientID))
	}
	p.logger.Info("notification", attrs...)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
