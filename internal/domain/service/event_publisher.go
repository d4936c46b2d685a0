package service

import (
	"context"
)

// StoreAction is the kind of mutation a store event describes.
type StoreAction string

const (
	StoreActionAdded   StoreAction = "added"
	StoreActionUpdated StoreAction = "updated"
)

// StoreEvent describes one mutation of the data store. Every repository
// write publishes one, replacing implicit observation of shared state.
type StoreEvent struct {
	Entity string      `json:"entity"` // e.g. "product", "store", "project"
	Action StoreAction `json:"action"`
	ID     string      `json:"id"`
}

// EventPublisher defines the interface for publishing store change events.
type EventPublisher interface {
	// PublishStoreEvent delivers a store change event to all subscribers.
	PublishStoreEvent(ctx context.Context, event *StoreEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
