package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/okiroth/gallery_backend/internal/domain"
)

// sortColumns is the allow-list for the sort query parameter. Anything
// not present here falls back to created_at so user input never reaches
// the ORDER BY clause directly.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
}

type ItemRepository struct {
	db      *sql.DB
	dialect string
}

func NewItemRepository(db *sql.DB, dialect string) *ItemRepository {
	return &ItemRepository{db: db, dialect: dialect}
}

func orderClause(sort, order string) string {
	col, ok := sortColumns[sort]
	if !ok {
		return "created_at DESC"
	}
	dir := "DESC"
	if order == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}

func (r *ItemRepository) List(ctx context.Context, sort, order string) ([]domain.GalleryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, category, image_url, affiliate_url,
		       is_featured, likes, dislikes, created_at
		FROM gallery_items
		ORDER BY `+orderClause(sort, order))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.GalleryItem
	for rows.Next() {
		var it domain.GalleryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Category,
			&it.ImageURL, &it.AffiliateURL, &it.IsFeatured,
			&it.Likes, &it.Dislikes, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ItemRepository) GetByID(ctx context.Context, id int) (domain.GalleryItem, error) {
	var it domain.GalleryItem
	err := r.db.QueryRowContext(ctx, bind(r.dialect, `
		SELECT id, name, description, category, image_url, affiliate_url,
		       is_featured, likes, dislikes, created_at
		FROM gallery_items WHERE id = ?`), id).
		Scan(&it.ID, &it.Name, &it.Description, &it.Category,
			&it.ImageURL, &it.AffiliateURL, &it.IsFeatured,
			&it.Likes, &it.Dislikes, &it.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.GalleryItem{}, domain.ErrNotFound
	}
	return it, err
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	item.CreatedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, bind(r.dialect, `
		INSERT INTO gallery_items
			(name, description, category, image_url, affiliate_url, is_featured, likes, dislikes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?)
		RETURNING id`),
		item.Name, item.Description, item.Category, item.ImageURL,
		item.AffiliateURL, item.IsFeatured, item.CreatedAt).
		Scan(&item.ID)
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.GalleryItem) error {
	result, err := r.db.ExecContext(ctx, bind(r.dialect, `
		UPDATE gallery_items
		SET name = ?, description = ?, category = ?, image_url = ?,
		    affiliate_url = ?, is_featured = ?
		WHERE id = ?`),
		item.Name, item.Description, item.Category, item.ImageURL,
		item.AffiliateURL, item.IsFeatured, item.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx,
		bind(r.dialect, `DELETE FROM gallery_items WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *ItemRepository) AddLikes(ctx context.Context, id, delta int) error {
	return r.addCounter(ctx, "likes", id, delta)
}

func (r *ItemRepository) AddDislikes(ctx context.Context, id, delta int) error {
	return r.addCounter(ctx, "dislikes", id, delta)
}

// addCounter is a single atomic row update; the CASE keeps the counter
// from going negative on decrements.
func (r *ItemRepository) addCounter(ctx context.Context, column string, id, delta int) error {
	result, err := r.db.ExecContext(ctx, bind(r.dialect, `
		UPDATE gallery_items
		SET `+column+` = CASE WHEN `+column+` + ? < 0 THEN 0 ELSE `+column+` + ? END
		WHERE id = ?`),
		delta, delta, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
