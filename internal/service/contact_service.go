package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"rockguard/internal/models"
)

// MaxMessageLength caps the free-text part of an enquiry, in characters.
const MaxMessageLength = 5000

// ContactService validates and stores contact enquiries
type ContactService struct {
	repo ContactRepository
	now  func() time.Time
}

// ContactRepository interface for dependency injection
type ContactRepository interface {
	SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// NewContactService creates a new contact service
func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo, now: time.Now}
}

// Submit validates msg, stamps it and stores it
func (s *ContactService) Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	msg.FirstName = strings.TrimSpace(msg.FirstName)
	msg.LastName = strings.TrimSpace(msg.LastName)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Company = strings.TrimSpace(msg.Company)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := validateContact(msg); err != nil {
		return nil, err
	}

	msg.ID = 0
	msg.CreatedAt = s.now().UTC()
	if err := s.repo.SaveContactMessage(ctx, &msg); err != nil {
		return nil, fmt.Errorf("service: failed to save contact message: %w", err)
	}
	return &msg, nil
}

func validateContact(msg models.ContactMessage) error {
	fields := map[string]string{}
	if msg.FirstName == "" {
		fields["first_name"] = "required"
	}
	if msg.Email == "" {
		fields["email"] = "required"
	} else if addr, err := mail.ParseAddress(msg.Email); err != nil || addr.Address != msg.Email {
		fields["email"] = "not a valid address"
	}
	switch n := utf8.RuneCountInString(msg.Message); {
	case n == 0:
		fields["message"] = "required"
	case n > MaxMessageLength:
		fields["message"] = fmt.Sprintf("longer than %d characters", MaxMessageLength)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
