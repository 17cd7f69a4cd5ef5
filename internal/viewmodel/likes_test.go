package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okiroth/gallery_backend/internal/domain"
)

// fakeCounters records adjustments synchronously.
type fakeCounters struct {
	likes    map[int]int
	dislikes map[int]int
	calls    int
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{likes: map[int]int{}, dislikes: map[int]int{}}
}

func (f *fakeCounters) AddLikes(id, delta int)    { f.likes[id] += delta; f.calls++ }
func (f *fakeCounters) AddDislikes(id, delta int) { f.dislikes[id] += delta; f.calls++ }

func TestToggleLikeFromNeutral(t *testing.T) {
	store := NewMemoryStore()
	api := newFakeCounters()
	ctrl := NewLikeController(store, api)
	item := &domain.GalleryItem{ID: 7, Likes: 3}

	ctrl.ToggleLike(item)

	assert.Equal(t, Liked, ctrl.State(7))
	assert.Equal(t, 4, item.Likes)
	assert.Equal(t, 1, api.likes[7])
	assert.Zero(t, api.dislikes[7])
}

func TestToggleLikeOffAgain(t *testing.T) {
	store := NewMemoryStore()
	api := newFakeCounters()
	ctrl := NewLikeController(store, api)
	item := &domain.GalleryItem{ID: 7, Likes: 3}

	ctrl.ToggleLike(item)
	ctrl.ToggleLike(item)

	assert.Equal(t, Neutral, ctrl.State(7))
	assert.Equal(t, 3, item.Likes)
	assert.Equal(t, 0, api.likes[7])
}

func TestLikeWhileDislikedClearsDislikeExactlyOnce(t *testing.T) {
	store := NewMemoryStore()
	api := newFakeCounters()
	ctrl := NewLikeController(store, api)
	item := &domain.GalleryItem{ID: 7, Likes: 3, Dislikes: 2}

	ctrl.ToggleDislike(item)
	api.calls = 0

	ctrl.ToggleLike(item)

	assert.Equal(t, Liked, ctrl.State(7))
	assert.Equal(t, 4, item.Likes)
	assert.Equal(t, 2, item.Dislikes, "the optimistic dislike bump must be undone")
	assert.Equal(t, 1, api.likes[7])
	assert.Equal(t, 0, api.dislikes[7], "one increment then one decrement")
	assert.Equal(t, 2, api.calls, "exactly one like call and one dislike call")
}

func TestDislikeWhileLikedIsSymmetric(t *testing.T) {
	store := NewMemoryStore()
	api := newFakeCounters()
	ctrl := NewLikeController(store, api)
	item := &domain.GalleryItem{ID: 9, Likes: 1}

	ctrl.ToggleLike(item)
	ctrl.ToggleDislike(item)

	assert.Equal(t, Disliked, ctrl.State(9))
	assert.Equal(t, 1, item.Likes)
	assert.Equal(t, 1, item.Dislikes)
}

func TestLocalCounterNeverGoesNegative(t *testing.T) {
	store := NewMemoryStore()
	api := newFakeCounters()
	ctrl := NewLikeController(store, api)

	// Server counter is already zero; toggling a stale liked flag off
	// must not render -1.
	store.Set("liked_3", "1")
	item := &domain.GalleryItem{ID: 3, Likes: 0}

	ctrl.ToggleLike(item)
	assert.Equal(t, 0, item.Likes)
}

func TestRenderReadsClientFlags(t *testing.T) {
	store := NewMemoryStore()
	store.Set("liked_1", "1")
	store.Set("disliked_2", "1")

	view := View{Items: []domain.GalleryItem{{ID: 1}, {ID: 2}, {ID: 3}}}
	rendered := Render(view, store)

	assert.True(t, rendered[0].Liked)
	assert.False(t, rendered[0].Disliked)
	assert.True(t, rendered[1].Disliked)
	assert.False(t, rendered[2].Liked)
	assert.False(t, rendered[2].Disliked)
}
