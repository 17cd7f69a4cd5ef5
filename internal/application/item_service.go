package application

import (
	"context"
	"strings"

	"github.com/okiroth/gallery_backend/internal/domain"
)

// ItemInput carries the writable fields of a gallery item.
type ItemInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ImageURL     string `json:"imageUrl"`
	AffiliateURL string `json:"affiliateUrl"`
	IsFeatured   bool   `json:"isFeatured"`
}

type ItemService struct {
	repo domain.ItemRepository
}

func NewItemService(repo domain.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) ListItems(ctx context.Context, sort, order string) ([]domain.GalleryItem, error) {
	return s.repo.List(ctx, sort, order)
}

func (s *ItemService) GetItem(ctx context.Context, id int) (domain.GalleryItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ItemService) CreateItem(ctx context.Context, in ItemInput) (*domain.GalleryItem, error) {
	if err := validateItemInput(in); err != nil {
		return nil, err
	}
	item := &domain.GalleryItem{
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Category:     normalizeCategory(in.Category),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		AffiliateURL: strings.TrimSpace(in.AffiliateURL),
		IsFeatured:   in.IsFeatured,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, id int, in ItemInput) (*domain.GalleryItem, error) {
	if err := validateItemInput(in); err != nil {
		return nil, err
	}
	item := &domain.GalleryItem{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Category:     normalizeCategory(in.Category),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		AffiliateURL: strings.TrimSpace(in.AffiliateURL),
		IsFeatured:   in.IsFeatured,
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.getUpdated(ctx, item)
}

// getUpdated re-reads the row so the response carries the counters and
// createdAt the update left untouched.
func (s *ItemService) getUpdated(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error) {
	fresh, err := s.repo.GetByID(ctx, item.ID)
	if err != nil {
		return item, nil
	}
	return &fresh, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *ItemService) AddLikes(ctx context.Context, id, delta int) error {
	return s.repo.AddLikes(ctx, id, delta)
}

func (s *ItemService) AddDislikes(ctx context.Context, id, delta int) error {
	return s.repo.AddDislikes(ctx, id, delta)
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return domain.DefaultCategory
	}
	return category
}
