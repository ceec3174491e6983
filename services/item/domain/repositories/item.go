package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/catalog/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// List retrieves every item in the catalog. Filtering happens in the
	// application layer; order is not significant.
	List(ctx context.Context) ([]*models.Item, error)

	// Update persists changes to an existing Item. ID and CreatedAt are
	// never modified.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether an item with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
