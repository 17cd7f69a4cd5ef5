package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okiroth/gallery_backend/internal/domain"
)

// FileItemRepository is the local admin-panel variant: items live in a
// single JSON file instead of a database. Every mutation rewrites the
// file under a lock, which is fine at the scale this runs at.
type FileItemRepository struct {
	path string
	mu   sync.Mutex
}

type fileState struct {
	NextID int                  `json:"nextId"`
	Items  []domain.GalleryItem `json:"items"`
}

func NewFileItemRepository(path string) *FileItemRepository {
	return &FileItemRepository{path: path}
}

func (r *FileItemRepository) load() (*fileState, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return &fileState{NextID: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	var st fileState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	if st.NextID < 1 {
		st.NextID = 1
	}
	return &st, nil
}

func (r *FileItemRepository) save(st *fileState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func (r *FileItemRepository) List(ctx context.Context, sortKey, order string) ([]domain.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.load()
	if err != nil {
		return nil, err
	}

	items := make([]domain.GalleryItem, len(st.Items))
	copy(items, st.Items)

	asc := order == "asc"
	switch sortKey {
	case "name":
		sort.SliceStable(items, func(i, j int) bool {
			if asc {
				return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
			}
			return strings.ToLower(items[i].Name) > strings.ToLower(items[j].Name)
		})
	default:
		// Same fallback as the SQL store: createdAt, descending unless
		// createdAt was explicitly requested ascending.
		if sortKey != "createdAt" {
			asc = false
		}
		sort.SliceStable(items, func(i, j int) bool {
			if asc {
				return items[i].CreatedAt.Before(items[j].CreatedAt)
			}
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
	return items, nil
}

func (r *FileItemRepository) GetByID(ctx context.Context, id int) (domain.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.load()
	if err != nil {
		return domain.GalleryItem{}, err
	}
	for _, it := range st.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.GalleryItem{}, domain.ErrNotFound
}

func (r *FileItemRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.load()
	if err != nil {
		return err
	}
	item.ID = st.NextID
	item.CreatedAt = time.Now().UTC()
	item.Likes = 0
	item.Dislikes = 0
	st.NextID++
	st.Items = append(st.Items, *item)
	return r.save(st)
}

func (r *FileItemRepository) Update(ctx context.Context, item *domain.GalleryItem) error {
	return r.mutate(item.ID, func(it *domain.GalleryItem) {
		it.Name = item.Name
		it.Description = item.Description
		it.Category = item.Category
		it.ImageURL = item.ImageURL
		it.AffiliateURL = item.AffiliateURL
		it.IsFeatured = item.IsFeatured
	})
}

func (r *FileItemRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.load()
	if err != nil {
		return err
	}
	for i, it := range st.Items {
		if it.ID == id {
			st.Items = append(st.Items[:i], st.Items[i+1:]...)
			return r.save(st)
		}
	}
	return domain.ErrNotFound
}

func (r *FileItemRepository) AddLikes(ctx context.Context, id, delta int) error {
	return r.mutate(id, func(it *domain.GalleryItem) {
		it.Likes += delta
		if it.Likes < 0 {
			it.Likes = 0
		}
	})
}

func (r *FileItemRepository) AddDislikes(ctx context.Context, id, delta int) error {
	return r.mutate(id, func(it *domain.GalleryItem) {
		it.Dislikes += delta
		if it.Dislikes < 0 {
			it.Dislikes = 0
		}
	})
}

func (r *FileItemRepository) mutate(id int, apply func(*domain.GalleryItem)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.load()
	if err != nil {
		return err
	}
	for i := range st.Items {
		if st.Items[i].ID == id {
			apply(&st.Items[i])
			return r.save(st)
		}
	}
	return domain.ErrNotFound
}
