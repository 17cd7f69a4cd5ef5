package application

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/okiroth/gallery_backend/internal/domain"
	"github.com/okiroth/gallery_backend/internal/email"
)

var ErrRateLimited = errors.New("rate limited")

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ReportInput struct {
	ItemName     string `json:"itemName"`
	Category     string `json:"category"`
	AffiliateURL string `json:"affiliateUrl,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Reason       string `json:"reason"`
}

type ContactService struct {
	repo        domain.ContactRepository
	emailClient *email.Client
	inbox       string
	limiter     *RateLimiter
}

// NewContactService builds the service; emailClient may be nil, in which
// case submissions are only persisted.
func NewContactService(repo domain.ContactRepository, emailClient *email.Client, inbox string, limiter *RateLimiter) *ContactService {
	return &ContactService{repo: repo, emailClient: emailClient, inbox: inbox, limiter: limiter}
}

// SubmitContact stores a contact-form message and forwards it by email.
// clientIP keys the rate limiter.
func (s *ContactService) SubmitContact(ctx context.Context, clientIP string, in ContactInput) error {
	if ok, _ := s.limiter.Allow(clientIP); !ok {
		return ErrRateLimited
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Message) == "" {
		return &ValidationError{Message: "name and message are required"}
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}

	msg := &domain.ContactMessage{
		Kind:    domain.MessageKindContact,
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return err
	}
	s.forward(msg)
	return nil
}

// SubmitReport stores an item report. Reports are anonymous so only the
// item context is required.
func (s *ContactService) SubmitReport(ctx context.Context, clientIP string, in ReportInput) error {
	if ok, _ := s.limiter.Allow(clientIP); !ok {
		return ErrRateLimited
	}
	if strings.TrimSpace(in.ItemName) == "" {
		return &ValidationError{Message: "itemName is required"}
	}

	msg := &domain.ContactMessage{
		Kind:         domain.MessageKindReport,
		Name:         "anonymous",
		Message:      strings.TrimSpace(in.Reason),
		ItemName:     strings.TrimSpace(in.ItemName),
		Category:     strings.TrimSpace(in.Category),
		AffiliateURL: strings.TrimSpace(in.AffiliateURL),
		ImageURL:     strings.TrimSpace(in.ImageURL),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return err
	}
	s.forward(msg)
	return nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx)
}

// forward delivers the message to the configured inbox without blocking
// the request; failures are logged and otherwise dropped.
func (s *ContactService) forward(msg *domain.ContactMessage) {
	if s.emailClient == nil || s.inbox == "" {
		return
	}
	m := *msg
	go func() {
		if err := s.emailClient.SendMessageNotification(s.inbox, m); err != nil {
			log.Printf("contact: email delivery failed for message %d: %v", m.ID, err)
		}
	}()
}

// PurgeOlderThan is called by the retention scheduler.
func (s *ContactService) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	return s.repo.DeleteOlderThan(ctx, time.Now().UTC().Add(-age))
}
