package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
)

// EventFacade exposes the outbox operations required by the dispatcher.
type EventFacade interface {
	ClaimEvents(ctx context.Context, limit int) ([]model.Event, error)
	DeliverEvent(ctx context.Context, event model.Event) error
	AckEvent(ctx context.Context, id int64) error
	RetryEvent(ctx context.Context, id int64) error
}

// Options configures EventDispatcher.
type Options struct {
	PollInterval time.Duration
	BatchSize    int
	Workers      int
	// MaxAttempts drops an event after that many failed deliveries. Zero retries forever.
	MaxAttempts int
}

// EventDispatcher polls the outbox and publishes events concurrently.
type EventDispatcher struct {
	facade EventFacade
	opts   Options
	logger *slog.Logger

	jobs   chan model.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewEventDispatcher constructs the dispatcher worker pool.
func NewEventDispatcher(facade EventFacade, opts Options, logger *slog.Logger) *EventDispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 1
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	return &EventDispatcher{facade: facade, opts: opts, logger: logger}
}

// Start launches background dispatching. Calling Start on a running dispatcher is a no-op.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.jobs = make(chan model.Event, d.opts.BatchSize)

	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx, d.jobs)
	}

	d.wg.Add(1)
	go d.poll(runCtx, d.jobs)
}

// Stop cancels polling and waits for in-flight deliveries.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *EventDispatcher) poll(ctx context.Context, jobs chan<- model.Event) {
	defer d.wg.Done()
	defer close(jobs)
	ticker := time.NewTicker(d.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.claimAndDispatch(ctx, jobs)
		}
	}
}

func (d *EventDispatcher) claimAndDispatch(ctx context.Context, jobs chan<- model.Event) {
	events, err := d.facade.ClaimEvents(ctx, d.opts.BatchSize)
	if err != nil {
		d.logger.Error("claim events failed", slog.String("error", err.Error()))
		return
	}
	for _, event := range events {
		select {
		case <-ctx.Done():
			return
		case jobs <- event:
		}
	}
}

func (d *EventDispatcher) worker(ctx context.Context, jobs <-chan model.Event) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-jobs:
			if !ok {
				return
			}
			d.handleEvent(ctx, event)
		}
	}
}

func (d *EventDispatcher) handleEvent(ctx context.Context, event model.Event) {
	if d.opts.MaxAttempts > 0 && event.Attempts >= d.opts.MaxAttempts {
		d.logger.Error("dropping undeliverable event",
			slog.String("event_id", event.EventID),
			slog.String("type", string(event.Type)),
			slog.Int("attempts", event.Attempts),
		)
		d.ack(ctx, event)
		return
	}

	if err := d.facade.DeliverEvent(ctx, event); err != nil {
		d.logger.Error("deliver event failed",
			slog.String("event_id", event.EventID),
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()),
		)
		if err := d.facade.RetryEvent(ctx, event.ID); err != nil {
			d.logger.Error("release event failed", slog.Int64("id", event.ID), slog.String("error", err.Error()))
		}
		return
	}
	d.ack(ctx, event)
}

func (d *EventDispatcher) ack(ctx context.Context, event model.Event) {
	if err := d.facade.AckEvent(ctx, event.ID); err != nil {
		d.logger.Error("mark event sent failed", slog.Int64("id", event.ID), slog.String("error", err.Error()))
	}
}
