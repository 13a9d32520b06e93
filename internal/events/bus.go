package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Event types
const (
	EventCampaignCreated = "campaign_created"
	EventCampaignUpdated = "campaign_updated"
	EventCampaignDeleted = "campaign_deleted"
)

// StreamCampaigns carries campaign lifecycle events to dashboard clients.
const StreamCampaigns = "events:campaign"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}

// Bus is an in-process publish/subscribe fan-out. The whole system runs in
// one process, so events never cross a network boundary.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]func(Event)
	log      *zap.Logger
}

func NewBus(log *zap.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]func(Event)),
		log:      log,
	}
}

func (b *Bus) Publish(ctx context.Context, stream string, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[stream]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

func (b *Bus) Subscribe(ctx context.Context, stream string, handler func(Event)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[stream] = append(b.handlers[stream], handler)
	return nil
}
