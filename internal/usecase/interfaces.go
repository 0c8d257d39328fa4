package usecase

import (
	"context"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/queue"
)

// SessionStore issues and resolves opaque session tokens. Backed by Redis in
// production; mocked in tests.
type SessionStore interface {
	Create(ctx context.Context, email string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// EventPublisher pushes lead lifecycle events to the queue. The catalog feed
// hangs off it.
type EventPublisher interface {
	PublishLeadSold(ctx context.Context, payload queue.LeadSoldPayload) error
}

// EmailService sends transactional mail. Implementations are best-effort;
// usecases never fail on mail errors.
type EmailService interface {
	SendAccessApproved(to string) error
	SendNewsletter(to string, leadCount int, titles []string) error
}
