package service

import (
	"context"

	"ministryhub-backend/internal/domain"
)

// DispatchResult summarizes one fan-out invocation.
type DispatchResult struct {
	Recipients  int `json:"recipients"`
	InboxEvents int `json:"inbox_events"`
	PushSent    int `json:"push_sent"`
	PushFailed  int `json:"push_failed"`
	EmailSent   int `json:"email_sent"`
}

type RecipientResolver interface {
	// Resolve returns the deduplicated recipient set for a trigger. The
	// creation path unions admins with leaders of ministryName; the status
	// path finds the single profile linked to requesterID.
	Resolve(ctx context.Context, kind domain.ChangeKind, ministryName, requesterID string) ([]domain.UserProfile, error)
}

type FanoutDispatcher interface {
	Dispatch(ctx context.Context, recipients []domain.UserProfile, payload domain.EventPayload) (*DispatchResult, error)
}

type JoinRequestNotifier interface {
	HandleCreated(ctx context.Context, change *domain.JoinRequestChange) (*DispatchResult, error)
	HandleStatusChanged(ctx context.Context, change *domain.JoinRequestChange) (*DispatchResult, error)
}

type AdminService interface {
	// GrantAdminRole grants the admin role to the caller's profile and its
	// linked secondary profile. Errors carry grpc status codes:
	// PermissionDenied and FailedPrecondition.
	GrantAdminRole(ctx context.Context, callerUID, callerEmail string) error
}

type InboxService interface {
	ListInbox(ctx context.Context, recipientID string, limit int) ([]domain.InboxEvent, error)
	MarkRead(ctx context.Context, recipientID, eventID string) error
}

type EmailService interface {
	SendJoinRequestAlert(ctx context.Context, toEmail, toName, title, body string) error
}
