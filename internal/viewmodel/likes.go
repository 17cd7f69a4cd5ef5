package viewmodel

import (
	"strconv"

	"github.com/okiroth/gallery_backend/internal/domain"
)

const (
	likedKeyPrefix    = "liked_"
	dislikedKeyPrefix = "disliked_"
)

// LikeState is one item's reaction state for one client.
type LikeState int

const (
	Neutral LikeState = iota
	Liked
	Disliked
)

// CounterAPI posts counter adjustments to the server. The production
// implementation is fire-and-forget; failures never reach the caller.
type CounterAPI interface {
	AddLikes(id, delta int)
	AddDislikes(id, delta int)
}

// LikeController drives the per-item like/dislike controls. An item is
// never liked and disliked at the same time: toggling one side clears
// the other, both locally and via a counter adjustment.
type LikeController struct {
	store ClientStore
	api   CounterAPI
}

func NewLikeController(store ClientStore, api CounterAPI) *LikeController {
	return &LikeController{store: store, api: api}
}

func (c *LikeController) State(id int) LikeState {
	if _, ok := c.store.Get(likedKey(id)); ok {
		return Liked
	}
	if _, ok := c.store.Get(dislikedKey(id)); ok {
		return Disliked
	}
	return Neutral
}

// ToggleLike applies a like click to the item. The item's counters are
// adjusted optimistically; the server calls are not waited on.
func (c *LikeController) ToggleLike(item *domain.GalleryItem) {
	switch c.State(item.ID) {
	case Liked:
		c.store.Delete(likedKey(item.ID))
		bump(&item.Likes, -1)
		c.api.AddLikes(item.ID, -1)
	case Disliked:
		c.store.Delete(dislikedKey(item.ID))
		bump(&item.Dislikes, -1)
		c.api.AddDislikes(item.ID, -1)
		fallthrough
	default:
		c.store.Set(likedKey(item.ID), "1")
		bump(&item.Likes, 1)
		c.api.AddLikes(item.ID, 1)
	}
}

// ToggleDislike is symmetric to ToggleLike.
func (c *LikeController) ToggleDislike(item *domain.GalleryItem) {
	switch c.State(item.ID) {
	case Disliked:
		c.store.Delete(dislikedKey(item.ID))
		bump(&item.Dislikes, -1)
		c.api.AddDislikes(item.ID, -1)
	case Liked:
		c.store.Delete(likedKey(item.ID))
		bump(&item.Likes, -1)
		c.api.AddLikes(item.ID, -1)
		fallthrough
	default:
		c.store.Set(dislikedKey(item.ID), "1")
		bump(&item.Dislikes, 1)
		c.api.AddDislikes(item.ID, 1)
	}
}

func bump(counter *int, delta int) {
	*counter += delta
	if *counter < 0 {
		*counter = 0
	}
}

func likedKey(id int) string {
	return likedKeyPrefix + strconv.Itoa(id)
}

func dislikedKey(id int) string {
	return dislikedKeyPrefix + strconv.Itoa(id)
}

// RenderedItem is what a gallery card displays: the item, the client's
// reaction state and the formatted date.
type RenderedItem struct {
	domain.GalleryItem
	Liked       bool   `json:"liked"`
	Disliked    bool   `json:"disliked"`
	DisplayDate string `json:"displayDate"`
}

// Render decorates the current page's items with per-client state.
func Render(view View, store ClientStore) []RenderedItem {
	out := make([]RenderedItem, 0, len(view.Items))
	for _, it := range view.Items {
		_, liked := store.Get(likedKey(it.ID))
		_, disliked := store.Get(dislikedKey(it.ID))
		out = append(out, RenderedItem{
			GalleryItem: it,
			Liked:       liked,
			Disliked:    disliked,
			DisplayDate: it.CreatedAt.Format("Jan 2, 2006"),
		})
	}
	return out
}
