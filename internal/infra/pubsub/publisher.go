// Package pubsub provides an in-process publisher for store change events.
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"turriva/internal/domain/service"

	"github.com/pkg/errors"
)

// Subscriber receives store change events.
type Subscriber func(event *service.StoreEvent)

// InProcPublisher fans store change events out to registered subscribers
// within the process. There is no durable queue; delivery is synchronous.
type InProcPublisher struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	closed      bool
	logger      *slog.Logger
}

// NewInProcPublisher creates a new in-process publisher.
func NewInProcPublisher(logger *slog.Logger) service.EventPublisher {
	return &InProcPublisher{logger: logger}
}

// Subscribe registers a subscriber for all future events.
func (p *InProcPublisher) Subscribe(sub Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, sub)
}

// PublishStoreEvent delivers a store change event to all subscribers.
func (p *InProcPublisher) PublishStoreEvent(ctx context.Context, event *service.StoreEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errors.New("publisher is closed")
	}

	p.logger.Debug("Publishing store event",
		slog.String("entity", event.Entity),
		slog.String("action", string(event.Action)),
		slog.String("id", event.ID),
	)

	for _, sub := range p.subscribers {
		sub(event)
	}

	return nil
}

// Close releases any resources held by the publisher.
func (p *InProcPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.subscribers = nil

	return nil
}
