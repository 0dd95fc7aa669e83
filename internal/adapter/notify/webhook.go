package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

const webhookBreakerName = "notify-webhook"

// BreakerObserver receives circuit breaker state changes (0=closed, 1=open, 2=half-open).
type BreakerObserver interface {
	SetBreakerState(name string, state int)
}

// WebhookOptions tunes the webhook client and its circuit breaker.
type WebhookOptions struct {
	Timeout      time.Duration
	BreakerReset time.Duration
	Observer     BreakerObserver
}

// WebhookPublisher POSTs events to an HTTP endpoint behind a circuit breaker.
type WebhookPublisher struct {
	client  *resty.Client
	url     string
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewWebhookPublisher validates endpoint and builds the publisher.
func NewWebhookPublisher(endpoint string, opts WebhookOptions, logger *slog.Logger) (*WebhookPublisher, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("webhook url must be absolute")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.BreakerReset <= 0 {
		opts.BreakerReset = 30 * time.Second
	}

	observe := func(gobreaker.State) {}
	if opts.Observer != nil {
		opts.Observer.SetBreakerState(webhookBreakerName, 0)
		observe = func(to gobreaker.State) { opts.Observer.SetBreakerState(webhookBreakerName, breakerStateValue(to)) }
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        webhookBreakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     opts.BreakerReset,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && ratio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			observe(to)
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &WebhookPublisher{
		client:  resty.New().SetTimeout(opts.Timeout).SetRetryCount(0),
		url:     parsed.String(),
		breaker: breaker,
		logger:  logger,
	}, nil
}

// Publish delivers the event. The event id is sent as an idempotency key.
func (p *WebhookPublisher) Publish(ctx context.Context, event model.Event) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("Idempotency-Key", event.EventID).
			SetBody(newMessage(event)).
			Post(p.url)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), resp.String())
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("deliver event %s: %w", event.EventID, err)
	}
	return nil
}

// Close is a no-op, the HTTP client holds no resources worth releasing.
func (p *WebhookPublisher) Close() error {
	return nil
}

func breakerStateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
