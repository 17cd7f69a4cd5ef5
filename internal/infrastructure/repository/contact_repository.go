package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/okiroth/gallery_backend/internal/domain"
)

type ContactRepository struct {
	db      *sql.DB
	dialect string
}

func NewContactRepository(db *sql.DB, dialect string) *ContactRepository {
	return &ContactRepository{db: db, dialect: dialect}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	msg.CreatedAt = time.Now().UTC()
	return r.db.QueryRowContext(ctx, bind(r.dialect, `
		INSERT INTO contact_messages
			(kind, name, email, message, item_name, category, affiliate_url, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`),
		msg.Kind, msg.Name, msg.Email, msg.Message,
		msg.ItemName, msg.Category, msg.AffiliateURL, msg.ImageURL, msg.CreatedAt).
		Scan(&msg.ID)
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, name, email, message, item_name, category, affiliate_url, image_url, created_at
		FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Kind, &m.Name, &m.Email, &m.Message,
			&m.ItemName, &m.Category, &m.AffiliateURL, &m.ImageURL, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *ContactRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		bind(r.dialect, `DELETE FROM contact_messages WHERE created_at < ?`), cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
