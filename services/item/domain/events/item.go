package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the item repository. Consumers subscribe
// via EventBus.Subscribe(ctx, topic).
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemCreatedEvent is published after a new Item is persisted.
type ItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID      uuid.UUID `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent is published after an existing Item's mutable fields change.
// CreatedAt carries the item's original creation time so read models can be
// rebuilt from the event alone.
type ItemUpdatedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	ItemID      uuid.UUID `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an Item is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
