package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okiroth/gallery_backend/internal/domain"
)

// memItems is a minimal in-memory ItemRepository.
type memItems struct {
	items  map[int]domain.GalleryItem
	nextID int
}

func newMemItems() *memItems {
	return &memItems{items: map[int]domain.GalleryItem{}, nextID: 1}
}

func (m *memItems) List(ctx context.Context, sort, order string) ([]domain.GalleryItem, error) {
	var out []domain.GalleryItem
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *memItems) GetByID(ctx context.Context, id int) (domain.GalleryItem, error) {
	it, ok := m.items[id]
	if !ok {
		return domain.GalleryItem{}, domain.ErrNotFound
	}
	return it, nil
}

func (m *memItems) Create(ctx context.Context, item *domain.GalleryItem) error {
	item.ID = m.nextID
	m.nextID++
	item.CreatedAt = time.Now()
	m.items[item.ID] = *item
	return nil
}

func (m *memItems) Update(ctx context.Context, item *domain.GalleryItem) error {
	old, ok := m.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	item.CreatedAt = old.CreatedAt
	item.Likes = old.Likes
	item.Dislikes = old.Dislikes
	m.items[item.ID] = *item
	return nil
}

func (m *memItems) Delete(ctx context.Context, id int) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memItems) AddLikes(ctx context.Context, id, delta int) error {
	it, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Likes += delta
	if it.Likes < 0 {
		it.Likes = 0
	}
	m.items[id] = it
	return nil
}

func (m *memItems) AddDislikes(ctx context.Context, id, delta int) error {
	it, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Dislikes += delta
	if it.Dislikes < 0 {
		it.Dislikes = 0
	}
	m.items[id] = it
	return nil
}

func validInput() ItemInput {
	return ItemInput{
		Name:         "Earbuds",
		ImageURL:     "https://img.example.com/e.jpg",
		AffiliateURL: "https://shop.example.com/e",
	}
}

func TestCreateItemRequiresFields(t *testing.T) {
	svc := NewItemService(newMemItems())
	ctx := context.Background()

	var vErr *ValidationError

	in := validInput()
	in.Name = ""
	_, err := svc.CreateItem(ctx, in)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "name")

	in = validInput()
	in.ImageURL = " "
	in.AffiliateURL = ""
	_, err = svc.CreateItem(ctx, in)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "imageUrl")
	assert.Contains(t, vErr.Message, "affiliateUrl")
}

func TestCreateItemRejectsMalformedURLs(t *testing.T) {
	svc := NewItemService(newMemItems())

	in := validInput()
	in.ImageURL = "not a url"

	var vErr *ValidationError
	_, err := svc.CreateItem(context.Background(), in)
	assert.ErrorAs(t, err, &vErr)
}

func TestCreateItemDefaultsCategory(t *testing.T) {
	svc := NewItemService(newMemItems())

	item, err := svc.CreateItem(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategory, item.Category)
	assert.NotZero(t, item.ID)
}

func TestUpdateItemKeepsCounters(t *testing.T) {
	repo := newMemItems()
	svc := NewItemService(repo)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, repo.AddLikes(ctx, item.ID, 5))

	in := validInput()
	in.Name = "Renamed"
	updated, err := svc.UpdateItem(ctx, item.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 5, updated.Likes)

	_, err = svc.UpdateItem(ctx, 999, validInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
