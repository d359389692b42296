package events

import (
	"context"
	"log/slog"
)

// Sink is anything that can deliver a validation event.
type Sink interface {
	Publish(ctx context.Context, event ValidationEvent) error
}

// Worker consumes events from an inbox channel and delivers them to a sink.
// The service enqueues without blocking; the worker absorbs broker latency.
type Worker struct {
	sink   Sink
	inbox  <-chan ValidationEvent
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan ValidationEvent, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run delivers events until the context is canceled. Delivery failures are
// logged and dropped; validation verdicts must never depend on broker
// availability.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Publish(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to publish validation event",
					"event_id", event.ID,
					"error", err,
				)
			}
		}
	}
}
