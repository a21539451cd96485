package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ncobase/catalog/cache"
	"github.com/ncobase/catalog/data"
	"github.com/ncobase/catalog/data/repository"
	"github.com/ncobase/catalog/ecode"
	"github.com/ncobase/catalog/logger"
	"github.com/ncobase/catalog/model"
	"github.com/ncobase/catalog/paging"
)

func itemKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

const (
	maxNameLen        = 200
	maxDescriptionLen = 1000

	itemCacheTTL = time.Hour
)

// ItemService handles item business logic. It is the only component that
// validates input; storage ordering and filtering stay in the repository,
// pagination mechanics in the paging engine.
type ItemService struct {
	repo   repository.ItemRepository
	cache  *cache.Cache[model.Item]
	logger *logger.Logger
}

// NewItemService creates a new item service.
func NewItemService(d *data.Data, logger *logger.Logger) *ItemService {
	return &ItemService{
		repo:   d.ItemRepo,
		cache:  cache.New[model.Item](d.RC, "items", itemCacheTTL),
		logger: logger,
	}
}

// CreateItemRequest represents the request to create an item. Field
// validation happens in the service so that outcome ordering (existence
// before validity on update) stays in one place.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateItemRequest represents the request to update an item.
type UpdateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// validateFields checks the business constraints on name and description.
func validateFields(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Message: ecode.FieldIsRequired("name")}
	}
	if len(name) > maxNameLen {
		return &ValidationError{Message: ecode.FieldIsInvalid("name")}
	}
	if len(description) > maxDescriptionLen {
		return &ValidationError{Message: ecode.FieldIsInvalid("description")}
	}
	return nil
}

// List retrieves all items ordered by name, optionally restricted to a
// case-insensitive substring match on name or description.
func (s *ItemService) List(ctx context.Context, filter string) ([]model.Item, error) {
	items, err := s.repo.List(ctx, strings.TrimSpace(filter))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]model.Item, 0)
	}
	return items, nil
}

// ListPaged retrieves one offset-mode page of items.
func (s *ItemService) ListPaged(ctx context.Context, params paging.OffsetParams) (*paging.OffsetResult[model.Item], error) {
	return paging.Offset[model.Item](ctx, s.repo, params)
}

// ListByCursor retrieves one cursor-mode page of items. A malformed
// cursor fails with paging.ErrInvalidCursor.
func (s *ItemService) ListByCursor(ctx context.Context, params paging.CursorParams) (*paging.CursorResult[model.Item], error) {
	return paging.Cursor[model.Item](ctx, s.repo, params)
}

// Get retrieves an item by identifier, through the cache when enabled.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	if cached, err := s.cache.Get(ctx, itemKey(id)); err == nil && cached != nil {
		return cached, nil
	}

	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, itemKey(id), it); err != nil {
		s.logger.Warn(ctx, "failed to cache item", "id", id, "error", err)
	}
	return it, nil
}

// Create validates and stores a new item. The store assigns the
// identifier; both timestamps are set to now.
func (s *ItemService) Create(ctx context.Context, req *CreateItemRequest) (*model.Item, error) {
	if err := validateFields(req.Name, req.Description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	it := &model.Item{
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, it)
}

// Update replaces name and description of an existing item and refreshes
// its update timestamp. A missing item reports NotFound before any field
// validation; CreatedAt is never touched.
func (s *ItemService) Update(ctx context.Context, id int64, req *UpdateItemRequest) (*model.Item, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}

	if err := validateFields(req.Name, req.Description); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		// Raced with a concurrent delete; last writer loses.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}

	if err := s.cache.Delete(ctx, itemKey(id)); err != nil {
		s.logger.Warn(ctx, "failed to invalidate cached item", "id", id, "error", err)
	}
	return updated, nil
}

// Delete removes an item permanently.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{ID: id}
		}
		return err
	}

	if err := s.cache.Delete(ctx, itemKey(id)); err != nil {
		s.logger.Warn(ctx, "failed to invalidate cached item", "id", id, "error", err)
	}
	return nil
}
