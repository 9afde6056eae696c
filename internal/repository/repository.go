package repository

import (
	"context"
	"time"

	"ministryhub-backend/internal/domain"
)

type MinistryRepository interface {
	// GetByID returns nil, nil when the ministry document does not exist.
	GetByID(ctx context.Context, id string) (*domain.Ministry, error)
}

type UserProfileRepository interface {
	// GetByID returns nil, nil when the profile document does not exist.
	GetByID(ctx context.Context, uid string) (*domain.UserProfile, error)
	ListByRole(ctx context.Context, role string) ([]domain.UserProfile, error)
	// ListByLeadership matches profiles whose leadershipMinistries contains
	// the ministry display name.
	ListByLeadership(ctx context.Context, ministryName string) ([]domain.UserProfile, error)
	// FindByLinkedMember returns at most one profile, nil when none matches.
	FindByLinkedMember(ctx context.Context, memberID string) (*domain.UserProfile, error)
	// AddRole appends a role to the profile's role set; adding an already
	// present role is a no-op.
	AddRole(ctx context.Context, uid, role string) error
}

type InboxRepository interface {
	// CreateBatch writes all events in one atomic upsert batch; either every
	// row lands or none do.
	CreateBatch(ctx context.Context, events []domain.InboxEvent) error
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.InboxEvent, error)
	MarkRead(ctx context.Context, recipientID, eventID string) error
	// PruneRead deletes read events created before the cutoff, returning the
	// number removed.
	PruneRead(ctx context.Context, cutoff time.Time) (int, error)
}
