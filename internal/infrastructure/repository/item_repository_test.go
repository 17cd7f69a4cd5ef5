package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okiroth/gallery_backend/internal/domain"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db, DialectSQLite))
	return db
}

func testItem(name string) *domain.GalleryItem {
	return &domain.GalleryItem{
		Name:         name,
		Description:  "a thing",
		Category:     "gadgets",
		ImageURL:     "https://img.example.com/" + name + ".jpg",
		AffiliateURL: "https://shop.example.com/" + name,
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	repo := NewItemRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	item := testItem("earbuds")
	item.IsFeatured = true
	require.NoError(t, repo.Create(ctx, item))
	assert.NotZero(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())

	items, err := repo.List(ctx, "createdAt", "desc")
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "earbuds", got.Name)
	assert.Equal(t, "a thing", got.Description)
	assert.Equal(t, "gadgets", got.Category)
	assert.Equal(t, item.ImageURL, got.ImageURL)
	assert.Equal(t, item.AffiliateURL, got.AffiliateURL)
	assert.True(t, got.IsFeatured)
	assert.Zero(t, got.Likes)
	assert.Zero(t, got.Dislikes)
}

func TestListSortAllowList(t *testing.T) {
	repo := NewItemRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testItem("bravo")))
	require.NoError(t, repo.Create(ctx, testItem("alpha")))

	items, err := repo.List(ctx, "name", "asc")
	require.NoError(t, err)
	assert.Equal(t, "alpha", items[0].Name)

	// Hostile sort input falls back to created_at DESC instead of
	// reaching the ORDER BY clause.
	items, err = repo.List(ctx, "evil;DROP TABLE gallery_items", "desc")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "alpha", items[0].Name, "newest first under the fallback sort")

	// Table must still exist.
	_, err = repo.List(ctx, "createdAt", "desc")
	assert.NoError(t, err)
}

func TestUpdateNonexistentLeavesStoreUntouched(t *testing.T) {
	repo := NewItemRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	existing := testItem("keep")
	require.NoError(t, repo.Create(ctx, existing))

	ghost := testItem("ghost")
	ghost.ID = 4242
	assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrNotFound)

	items, err := repo.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "keep", items[0].Name)
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	repo := NewItemRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	item := testItem("original")
	require.NoError(t, repo.Create(ctx, item))

	changed := testItem("renamed")
	changed.ID = item.ID
	require.NoError(t, repo.Update(ctx, changed))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, item.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestDelete(t *testing.T) {
	repo := NewItemRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	item := testItem("doomed")
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, item.ID), domain.ErrNotFound)
}

func TestCountersFloorAtZero(t *testing.T) {
	repo := NewItemRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	item := testItem("counted")
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.AddLikes(ctx, item.ID, 1))
	require.NoError(t, repo.AddLikes(ctx, item.ID, 1))
	require.NoError(t, repo.AddDislikes(ctx, item.ID, -1))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Likes)
	assert.Equal(t, 0, got.Dislikes, "decrement below zero floors at zero")

	assert.ErrorIs(t, repo.AddLikes(ctx, 9999, 1), domain.ErrNotFound)
}
