// Package event provides the in-process event bus wiring domain
// events to their handlers.
package event

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/bhslighting/backend/internal/domain/shared"
)

// InMemoryEventBus implements EventBus with in-memory pub/sub.
// Handlers run on their own goroutine so publishing never blocks the
// request path; a slow or failing handler only shows up in the logs.
type InMemoryEventBus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
	stopped  atomic.Bool
	wg       sync.WaitGroup
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger,
	}
}

// Publish dispatches events to all registered handlers asynchronously.
// Events published after Stop are dropped with a warning.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, ev := range events {
		if b.stopped.Load() {
			b.logger.Warn("event bus stopped, dropping event",
				zap.String("event_type", ev.EventType()),
				zap.String("event_id", ev.EventID().String()),
			)
			continue
		}

		handlers := b.registry.GetHandlers(ev.EventType())
		for _, handler := range handlers {
			b.wg.Add(1)
			go func(handler shared.EventHandler, ev shared.DomainEvent) {
				defer b.wg.Done()
				b.dispatchToHandler(handler, ev)
			}(handler, ev)
		}
	}
	return nil
}

// Subscribe registers a handler for specific event types
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	// If the handler declares its own event types, use those
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("handler subscribed",
		zap.Strings("event_types", eventTypes),
	)
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
	b.logger.Debug("handler unsubscribed")
}

// Stop waits for in-flight handlers and stops accepting new events.
// The context bounds the wait; a timeout leaves stragglers running.
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.stopped.Store(true)

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("event bus stopped")
		return nil
	case <-ctx.Done():
		b.logger.Warn("event bus stop timed out with handlers in flight")
		return ctx.Err()
	}
}

// dispatchToHandler runs a handler with detached context and panic
// isolation. Handlers outlive the originating request, so they must
// not inherit its cancellation.
func (b *InMemoryEventBus) dispatchToHandler(handler shared.EventHandler, ev shared.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", ev.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	if err := handler.Handle(context.Background(), ev); err != nil {
		b.logger.Error("handler failed to process event",
			zap.String("event_type", ev.EventType()),
			zap.String("event_id", ev.EventID().String()),
			zap.Error(err),
		)
	}
}

// Ensure InMemoryEventBus implements EventBus
var _ shared.EventBus = (*InMemoryEventBus)(nil)
