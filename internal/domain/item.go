package domain

import (
	"context"
	"errors"
	"time"
)

// DefaultCategory is assigned to items submitted without an explicit category.
const DefaultCategory = "general"

var ErrNotFound = errors.New("not found")

type GalleryItem struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"imageUrl"`
	AffiliateURL string    `json:"affiliateUrl"`
	IsFeatured   bool      `json:"isFeatured"`
	Likes        int       `json:"likes"`
	Dislikes     int       `json:"dislikes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ItemRepository defines storage operations for gallery items.
// Sort and order values outside the allow-list fall back to
// created_at descending; implementations must never interpolate
// caller input into SQL.
type ItemRepository interface {
	List(ctx context.Context, sort, order string) ([]GalleryItem, error)
	GetByID(ctx context.Context, id int) (GalleryItem, error)
	Create(ctx context.Context, item *GalleryItem) error
	Update(ctx context.Context, item *GalleryItem) error
	Delete(ctx context.Context, id int) error
	// AddLikes adjusts the like counter by delta, floored at zero.
	AddLikes(ctx context.Context, id, delta int) error
	AddDislikes(ctx context.Context, id, delta int) error
}
