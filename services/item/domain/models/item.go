package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate of the catalog bounded context.
type Item struct {
	ID          uuid.UUID
	Name        ItemName
	Description string
	Price       Price
	CreatedAt   time.Time // set once at creation, never overwritten
}

// NewItem constructs a valid Item aggregate with generated ID and current timestamp.
func NewItem(name ItemName, description string, price Price) (*Item, error) {
	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
