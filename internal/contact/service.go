package contact

import (
	"context"
	"time"

	"github.com/loandesk/loandesk/internal/recordid"
)

// Service stores contact-form submissions.
type Service struct {
	repo Repository
}

// NewService builds a contact service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit persists a contact message stamped with the submission time.
func (s *Service) Submit(ctx context.Context, msg Message) (Message, error) {
	msg.ID = recordid.New()
	msg.SentAt = time.Now().UTC()

	if err := s.repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
