package repository_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncobase/catalog/data"
	"github.com/ncobase/catalog/data/repository"
	"github.com/ncobase/catalog/logger"
	"github.com/ncobase/catalog/model"
)

func newTestRepo(t *testing.T) repository.ItemRepository {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive and shared
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, data.Migrate(db))

	log := &logger.Logger{Logger: logrus.New()}
	log.SetOutput(io.Discard)

	return repository.NewItemRepository(db, log)
}

func seedItems(t *testing.T, repo repository.ItemRepository, names ...string) []model.Item {
	t.Helper()

	now := time.Now().UTC()
	out := make([]model.Item, 0, len(names))
	for _, name := range names {
		it, err := repo.Create(context.Background(), &model.Item{
			Name:        name,
			Description: "desc of " + name,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		require.NoError(t, err)
		out = append(out, *it)
	}
	return out
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := newTestRepo(t)

	items := seedItems(t, repo, "one", "two", "three")

	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, int64(3), items[2].ID)
}

func TestListOrdersByName(t *testing.T) {
	repo := newTestRepo(t)
	seedItems(t, repo, "banana", "apple", "cherry")

	items, err := repo.List(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, "apple", items[0].Name)
	assert.Equal(t, "banana", items[1].Name)
	assert.Equal(t, "cherry", items[2].Name)
}

func TestListTieBreaksByID(t *testing.T) {
	repo := newTestRepo(t)
	seedItems(t, repo, "same", "same", "same")

	items, err := repo.List(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, items, 3)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, int64(3), items[2].ID)
}

func TestFilterMatchesNameAndDescriptionCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)

	now := time.Now().UTC()
	for _, it := range []model.Item{
		{Name: "Copper Kettle", Description: "for the kitchen"},
		{Name: "Steel Pan", Description: "KITCHEN gear"},
		{Name: "Oak Table", Description: "dining room"},
	} {
		it.CreatedAt, it.UpdatedAt = now, now
		_, err := repo.Create(context.Background(), &it)
		require.NoError(t, err)
	}

	items, err := repo.List(context.Background(), "kItChEn")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	count, err := repo.Count(context.Background(), "kItChEn")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPageAndCount(t *testing.T) {
	repo := newTestRepo(t)

	names := make([]string, 0, 25)
	for i := 1; i <= 25; i++ {
		names = append(names, fmt.Sprintf("Item %02d", i))
	}
	seedItems(t, repo, names...)

	count, err := repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 25, count)

	page, err := repo.Page(context.Background(), "", 20, 10)
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, "Item 21", page[0].Name)
}

func TestAfterWalksIDOrder(t *testing.T) {
	repo := newTestRepo(t)
	// names deliberately reverse the id ordering
	seedItems(t, repo, "zebra", "yak", "wolf", "tapir", "snail")

	items, err := repo.After(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)

	items, err = repo.After(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(4), items[0].ID)
	assert.Equal(t, int64(5), items[1].ID)
}

func TestGetByID(t *testing.T) {
	repo := newTestRepo(t)
	seeded := seedItems(t, repo, "only")

	it, err := repo.GetByID(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "only", it.Name)

	_, err = repo.GetByID(context.Background(), 99999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Update(context.Background(), &model.Item{
		ID:        12345,
		Name:      "ghost",
		UpdatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	seeded := seedItems(t, repo, "doomed")

	require.NoError(t, repo.Delete(context.Background(), seeded[0].ID))

	_, err := repo.GetByID(context.Background(), seeded[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), seeded[0].ID), repository.ErrNotFound)
}
