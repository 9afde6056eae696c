package service

import (
	"context"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/repository"
)

const defaultInboxPageSize = 50

type inboxService struct {
	inboxRepo repository.InboxRepository
}

func NewInboxService(inboxRepo repository.InboxRepository) InboxService {
	return &inboxService{inboxRepo: inboxRepo}
}

func (s *inboxService) ListInbox(ctx context.Context, recipientID string, limit int) ([]domain.InboxEvent, error) {
	if limit <= 0 || limit > defaultInboxPageSize {
		limit = defaultInboxPageSize
	}
	return s.inboxRepo.ListByRecipient(ctx, recipientID, limit)
}

func (s *inboxService) MarkRead(ctx context.Context, recipientID, eventID string) error {
	return s.inboxRepo.MarkRead(ctx, recipientID, eventID)
}
