package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/catalog/pkg/cache"
	itemdomain "github.com/ghuser/catalog/services/item/domain"
	"github.com/ghuser/catalog/services/item/domain/models"
	"github.com/ghuser/catalog/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/catalog/services/item/domain/services"
)

// ItemService orchestrates the catalog CRUD operations over the repository.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from the Redis read model when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
// A nil cache disables the read-through path.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// Create validates and persists a new Item. ID and CreatedAt are generated
// here; callers never supply them. The repository publishes ItemCreatedEvent.
func (s *ItemService) Create(ctx context.Context, name, description string, price float64) (*models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	itemPrice, err := models.NewPrice(price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidPrice, err)
	}

	item, err := models.NewItem(itemName, description, itemPrice)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check the Redis read model first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Item{
				ID:          cached.ID,
				Name:        models.ItemName(cached.Name),
				Description: cached.Description,
				Price:       models.Price(cached.Price),
				CreatedAt:   cached.CreatedAt,
			}, nil
		}
		// Miss (redis.Nil) or cache error; fall through to Postgres.
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedItem{
				ID:          item.ID,
				Name:        item.Name.String(),
				Description: item.Description,
				Price:       item.Price.Float64(),
				CreatedAt:   item.CreatedAt,
			})
		}()
	}

	return item, nil
}

// List returns all catalog items. When nameFilter is non-empty, only items
// whose name contains it as a case-insensitive substring are returned.
// Result order is not significant.
func (s *ItemService) List(ctx context.Context, nameFilter string) ([]*models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	if nameFilter == "" {
		return items, nil
	}

	filter := strings.ToLower(nameFilter)
	filtered := make([]*models.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name.String()), filter) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// Update overwrites the mutable fields of an existing Item. ID and CreatedAt
// are preserved from the stored item. Returns ErrItemNotFound if no item with
// the given ID exists. The repository publishes ItemUpdatedEvent.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, name, description string, price float64) error {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, err)
	}

	itemPrice, err := models.NewPrice(price)
	if err != nil {
		return fmt.Errorf("%w: %w", itemdomain.ErrInvalidPrice, err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}

	updated := &models.Item{
		ID:          existing.ID,
		Name:        itemName,
		Description: description,
		Price:       itemPrice,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	// Stale entry; the worker re-warms from ItemUpdatedEvent.
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}

// Delete removes an item by ID.
// Returns ErrItemNotFound if no matching item exists.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if !exists {
		return itemdomain.ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}
