package domain

import (
	"context"
	"time"
)

const (
	MessageKindContact = "contact"
	MessageKindReport  = "report"
)

// ContactMessage covers both contact-form submissions and item reports.
// Report messages carry the item context fields; contact messages carry
// the sender's email.
type ContactMessage struct {
	ID           int64     `json:"id"`
	Kind         string    `json:"kind"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Message      string    `json:"message"`
	ItemName     string    `json:"itemName,omitempty"`
	Category     string    `json:"category,omitempty"`
	AffiliateURL string    `json:"affiliateUrl,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context) ([]ContactMessage, error)
	// DeleteOlderThan removes messages created before the cutoff and
	// returns how many rows were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
