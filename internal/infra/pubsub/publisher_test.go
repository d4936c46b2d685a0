package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"turriva/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcPublisher_FanOut(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewInProcPublisher(logger).(*InProcPublisher)

	var first, second []*service.StoreEvent
	publisher.Subscribe(func(event *service.StoreEvent) { first = append(first, event) })
	publisher.Subscribe(func(event *service.StoreEvent) { second = append(second, event) })

	event := &service.StoreEvent{Entity: "product", Action: service.StoreActionAdded, ID: "p-1"}
	require.NoError(t, publisher.PublishStoreEvent(context.Background(), event))

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, event, first[0])
	assert.Equal(t, event, second[0])
}

func TestInProcPublisher_Close(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewInProcPublisher(logger).(*InProcPublisher)

	require.NoError(t, publisher.Close())

	err := publisher.PublishStoreEvent(context.Background(), &service.StoreEvent{Entity: "store"})
	assert.Error(t, err)
}
