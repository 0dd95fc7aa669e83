package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/config"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/metrics"
)

// Module exposes the configured publisher to the fx graph.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics `optional:"true"`
}

// newPublisher prefers Kafka, then the webhook, then logging only.
func newPublisher(p publisherParams) (Publisher, error) {
	var (
		pub Publisher
		err error
	)
	switch {
	case len(p.Config.KafkaBrokers) > 0:
		pub, err = NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.KafkaTopic, p.Logger)
	case p.Config.NotifyWebhookURL != "":
		opts := WebhookOptions{}
		if p.Metrics != nil {
			opts.Observer = p.Metrics
		}
		pub, err = NewWebhookPublisher(p.Config.NotifyWebhookURL, opts, p.Logger)
	default:
		pub = NewLogPublisher(p.Logger)
	}
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error { return pub.Close() },
	})
	return pub, nil
}
