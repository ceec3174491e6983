package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/catalog/pkg/database"
	"github.com/ghuser/catalog/pkg/events"
	itemdomain "github.com/ghuser/catalog/services/item/domain"
	domainevents "github.com/ghuser/catalog/services/item/domain/events"
	"github.com/ghuser/catalog/services/item/domain/models"
)

const pgUniqueViolation = "23505"

// itemRow is the sqlx scan target for the items table.
type itemRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	CreatedAt   time.Time `db:"created_at"`
}

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Writes publish their domain event through the event bus within the same
// transaction (outbox pattern), so no event is lost if the process crashes
// after commit.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. A nil bus disables event publishing.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same
// transaction. Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, name, description, price, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.Name.String(), item.Description, item.Price.Float64(), item.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		return r.publish(tx, domainevents.TopicItemCreated, domainevents.ItemCreatedEvent{
			EventID:     uuid.New(),
			Version:     1,
			ItemID:      item.ID,
			Name:        item.Name.String(),
			Description: item.Description,
			Price:       item.Price.Float64(),
			OccurredAt:  item.CreatedAt,
		})
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var row itemRow
	err := r.db.DB().GetContext(ctx, &row,
		`SELECT id, name, description, price, created_at FROM items WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

// List retrieves every item in the catalog.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	var rows []itemRow
	err := r.db.DB().SelectContext(ctx, &rows,
		`SELECT id, name, description, price, created_at FROM items`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

// Update persists changes to an existing Item's mutable fields and publishes
// an ItemUpdatedEvent within the same transaction.
// Returns ErrItemNotFound if no row matches.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE items SET name = $2, description = $3, price = $4 WHERE id = $1`,
			item.ID, item.Name.String(), item.Description, item.Price.Float64(),
		)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return itemdomain.ErrItemNotFound
		}

		return r.publish(tx, domainevents.TopicItemUpdated, domainevents.ItemUpdatedEvent{
			EventID:     uuid.New(),
			Version:     1,
			ItemID:      item.ID,
			Name:        item.Name.String(),
			Description: item.Description,
			Price:       item.Price.Float64(),
			CreatedAt:   item.CreatedAt,
			OccurredAt:  time.Now().UTC(),
		})
	})
}

// Delete removes an item by ID and publishes an ItemDeletedEvent within the
// same transaction. Returns ErrItemNotFound if no row matches.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return itemdomain.ErrItemNotFound
		}

		return r.publish(tx, domainevents.TopicItemDeleted, domainevents.ItemDeletedEvent{
			EventID:    uuid.New(),
			Version:    1,
			ItemID:     id,
			OccurredAt: time.Now().UTC(),
		})
	})
}

// Exists reports whether an item with the given ID exists.
func (r *ItemRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

// publish marshals event and publishes it to topic on a publisher bound to tx.
func (r *ItemRepository) publish(tx *sqlx.Tx, topic string, event any) error {
	if r.bus == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx.Tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// rowToItem maps an itemRow to a domain models.Item.
func rowToItem(row itemRow) *models.Item {
	return &models.Item{
		ID:          row.ID,
		Name:        models.ItemName(row.Name),
		Description: row.Description,
		Price:       models.Price(row.Price),
		CreatedAt:   row.CreatedAt,
	}
}
