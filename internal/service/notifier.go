package service

import (
	"context"
	"fmt"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/logger"
	"ministryhub-backend/internal/repository"
)

type joinRequestNotifier struct {
	ministryRepo repository.MinistryRepository
	resolver     RecipientResolver
	dispatcher   FanoutDispatcher
}

func NewJoinRequestNotifier(ministryRepo repository.MinistryRepository, resolver RecipientResolver, dispatcher FanoutDispatcher) JoinRequestNotifier {
	return &joinRequestNotifier{
		ministryRepo: ministryRepo,
		resolver:     resolver,
		dispatcher:   dispatcher,
	}
}

// HandleCreated reacts to a new join request document: resolve the ministry
// name, resolve recipients (admins plus leaders), compose, dispatch.
func (n *joinRequestNotifier) HandleCreated(ctx context.Context, change *domain.JoinRequestChange) (*DispatchResult, error) {
	change.Kind = domain.ChangeKindCreated
	if err := change.Validate(); err != nil {
		return nil, err
	}
	after := change.After

	ministryName, err := n.resolveMinistryName(ctx, after.MinistryID)
	if err != nil {
		return nil, err
	}

	recipients, err := n.resolver.Resolve(ctx, domain.ChangeKindCreated, ministryName, "")
	if err != nil {
		return nil, err
	}

	payload := Compose(domain.ChangeKindCreated, ministryName, after.MinistryID, change.RequestID, after.RequesterID, "")
	return n.dispatcher.Dispatch(ctx, recipients, payload)
}

// HandleStatusChanged reacts to a status transition on an existing join
// request. Updates that leave the status untouched are skipped entirely.
func (n *joinRequestNotifier) HandleStatusChanged(ctx context.Context, change *domain.JoinRequestChange) (*DispatchResult, error) {
	change.Kind = domain.ChangeKindStatusChanged
	if err := change.Validate(); err != nil {
		return nil, err
	}
	if change.StatusUnchanged() {
		logger.Debug("Status unchanged, skipping", "request_id", change.RequestID, "status", change.After.Status)
		return &DispatchResult{}, nil
	}
	after := change.After

	recipients, err := n.resolver.Resolve(ctx, domain.ChangeKindStatusChanged, "", after.RequesterID)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		logger.Info("No profile linked to requester, nothing to notify", "request_id", change.RequestID, "requester_id", after.RequesterID)
		return &DispatchResult{}, nil
	}

	ministryName, err := n.resolveMinistryName(ctx, after.MinistryID)
	if err != nil {
		return nil, err
	}

	payload := Compose(domain.ChangeKindStatusChanged, ministryName, after.MinistryID, change.RequestID, after.RequesterID, after.Status)
	return n.dispatcher.Dispatch(ctx, recipients, payload)
}

// resolveMinistryName translates a ministry ID into its display name. A
// missing ministry document resolves to an empty name rather than an error;
// composed bodies then reference the ID verbatim and the leadership branch of
// recipient resolution is skipped.
func (n *joinRequestNotifier) resolveMinistryName(ctx context.Context, ministryID string) (string, error) {
	if ministryID == "" {
		return "", nil
	}
	ministry, err := n.ministryRepo.GetByID(ctx, ministryID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve ministry name: %w", err)
	}
	if ministry == nil {
		logger.Warn("Ministry not found", "ministry_id", ministryID)
		return "", nil
	}
	return ministry.Name, nil
}
