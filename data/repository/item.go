// Package repository provides item persistence over the relational store.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ncobase/catalog/logger"
	"github.com/ncobase/catalog/model"
)

// ErrNotFound is returned when no item matches the given identifier.
var ErrNotFound = errors.New("item not found")

// ItemRepository defines the interface for item data operations. Page,
// Count and After satisfy the pagination engine's record source; all
// ordered reads sort by name with id as tie-break, except After which
// walks the id ordering required by cursors.
type ItemRepository interface {
	List(ctx context.Context, query string) ([]model.Item, error)
	Page(ctx context.Context, query string, offset, limit int) ([]model.Item, error)
	Count(ctx context.Context, query string) (int, error)
	After(ctx context.Context, lastID int64, limit int) ([]model.Item, error)
	GetByID(ctx context.Context, id int64) (*model.Item, error)
	Create(ctx context.Context, it *model.Item) (*model.Item, error)
	Update(ctx context.Context, it *model.Item) (*model.Item, error)
	Delete(ctx context.Context, id int64) error
}

type itemRepository struct {
	db     *sqlx.DB
	logger *logger.Logger
}

// NewItemRepository creates a new item repository instance.
func NewItemRepository(db *sqlx.DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// filterClause builds the optional substring restriction on name and
// description. Matching is case-insensitive; a blank query matches all.
func filterClause(query string) (string, []any) {
	if query == "" {
		return "", nil
	}
	pattern := "%" + query + "%"
	return " WHERE (name LIKE ? COLLATE NOCASE OR description LIKE ? COLLATE NOCASE)",
		[]any{pattern, pattern}
}

// List retrieves all items matching the filter, ordered by name.
func (r *itemRepository) List(ctx context.Context, query string) ([]model.Item, error) {
	where, args := filterClause(query)

	var items []model.Item
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM items"+where+" ORDER BY name ASC, id ASC", args...)
	if err != nil {
		r.logger.Error(ctx, "failed to list items", "error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// Page retrieves one bounded slice of the filtered, name-ordered items.
func (r *itemRepository) Page(ctx context.Context, query string, offset, limit int) ([]model.Item, error) {
	where, args := filterClause(query)
	args = append(args, limit, offset)

	var items []model.Item
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM items"+where+" ORDER BY name ASC, id ASC LIMIT ? OFFSET ?", args...)
	if err != nil {
		r.logger.Error(ctx, "failed to page items", "error", err)
		return nil, fmt.Errorf("failed to page items: %w", err)
	}

	return items, nil
}

// Count returns the number of items matching the filter.
func (r *itemRepository) Count(ctx context.Context, query string) (int, error) {
	where, args := filterClause(query)

	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"+where, args...)
	if err != nil {
		r.logger.Error(ctx, "failed to count items", "error", err)
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	return count, nil
}

// After retrieves up to limit items with id greater than lastID, in id
// order. A zero lastID starts from the beginning.
func (r *itemRepository) After(ctx context.Context, lastID int64, limit int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM items WHERE id > ? ORDER BY id ASC LIMIT ?", lastID, limit)
	if err != nil {
		r.logger.Error(ctx, "failed to query items after cursor", "last_id", lastID, "error", err)
		return nil, fmt.Errorf("failed to query items after cursor: %w", err)
	}

	return items, nil
}

// GetByID retrieves an item by identifier.
func (r *itemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	err := r.db.GetContext(ctx, &it, "SELECT * FROM items WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error(ctx, "failed to get item", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &it, nil
}

// Create inserts a new item and fills in the store-assigned identifier.
func (r *itemRepository) Create(ctx context.Context, it *model.Item) (*model.Item, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO items (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)",
		it.Name, it.Description, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		r.logger.Error(ctx, "failed to create item", "error", err)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}
	it.ID = id

	r.logger.Info(ctx, "item created", "id", it.ID)
	return it, nil
}

// Update replaces name and description and refreshes updated_at.
func (r *itemRepository) Update(ctx context.Context, it *model.Item) (*model.Item, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE items SET name = ?, description = ?, updated_at = ? WHERE id = ?",
		it.Name, it.Description, it.UpdatedAt, it.ID)
	if err != nil {
		r.logger.Error(ctx, "failed to update item", "id", it.ID, "error", err)
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	r.logger.Info(ctx, "item updated", "id", it.ID)
	return it, nil
}

// Delete removes an item permanently.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		r.logger.Error(ctx, "failed to delete item", "id", id, "error", err)
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.logger.Info(ctx, "item deleted", "id", id)
	return nil
}
