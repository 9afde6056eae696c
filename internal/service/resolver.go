package service

import (
	"context"
	"fmt"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/logger"
	"ministryhub-backend/internal/repository"
)

type recipientResolver struct {
	userRepo repository.UserProfileRepository
}

func NewRecipientResolver(userRepo repository.UserProfileRepository) RecipientResolver {
	return &recipientResolver{userRepo: userRepo}
}

func (r *recipientResolver) Resolve(ctx context.Context, kind domain.ChangeKind, ministryName, requesterID string) ([]domain.UserProfile, error) {
	switch kind {
	case domain.ChangeKindCreated:
		return r.resolveForCreation(ctx, ministryName)
	case domain.ChangeKindStatusChanged:
		return r.resolveForStatusChange(ctx, requesterID)
	default:
		return nil, fmt.Errorf("unknown change kind %q", kind)
	}
}

// resolveForCreation unions all admins with all leaders of the ministry.
// Leadership is matched by ministry display name, not ID; callers resolve the
// name before calling, and an empty name skips the leadership branch entirely.
func (r *recipientResolver) resolveForCreation(ctx context.Context, ministryName string) ([]domain.UserProfile, error) {
	admins, err := r.userRepo.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve admin recipients: %w", err)
	}

	var leaders []domain.UserProfile
	if ministryName != "" {
		leaders, err = r.userRepo.ListByLeadership(ctx, ministryName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve leader recipients: %w", err)
		}
	} else {
		logger.Warn("Ministry name unresolved, skipping leadership branch")
	}

	// Dedup by profile ID; a user who is both admin and leader gets exactly
	// one inbox event and one push.
	seen := make(map[string]bool, len(admins)+len(leaders))
	recipients := make([]domain.UserProfile, 0, len(admins)+len(leaders))
	for _, p := range admins {
		if !seen[p.ID] {
			seen[p.ID] = true
			recipients = append(recipients, p)
		}
	}
	for _, p := range leaders {
		if !seen[p.ID] {
			seen[p.ID] = true
			recipients = append(recipients, p)
		}
	}
	return recipients, nil
}

func (r *recipientResolver) resolveForStatusChange(ctx context.Context, requesterID string) ([]domain.UserProfile, error) {
	profile, err := r.userRepo.FindByLinkedMember(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requester profile: %w", err)
	}
	if profile == nil {
		return nil, nil
	}
	return []domain.UserProfile{*profile}, nil
}
