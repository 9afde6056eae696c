package service

import (
	"context"
	"fmt"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/logger"
	"ministryhub-backend/internal/push"
	"ministryhub-backend/internal/repository"
)

type fanoutDispatcher struct {
	inboxRepo repository.InboxRepository
	pusher    push.Pusher
	emailSvc  EmailService // nil disables the email channel
}

// NewFanoutDispatcher creates the dispatcher. emailSvc may be nil when the
// email alert channel is disabled.
func NewFanoutDispatcher(inboxRepo repository.InboxRepository, pusher push.Pusher, emailSvc EmailService) FanoutDispatcher {
	return &fanoutDispatcher{
		inboxRepo: inboxRepo,
		pusher:    pusher,
		emailSvc:  emailSvc,
	}
}

// Dispatch persists one inbox event per recipient in a single atomic batch,
// then attempts push and email delivery. The durable write is the only fatal
// step; push and email are best-effort and never roll it back.
func (d *fanoutDispatcher) Dispatch(ctx context.Context, recipients []domain.UserProfile, payload domain.EventPayload) (*DispatchResult, error) {
	result := &DispatchResult{Recipients: len(recipients)}
	if len(recipients) == 0 {
		return result, nil
	}

	events := make([]domain.InboxEvent, 0, len(recipients))
	for _, rec := range recipients {
		events = append(events, domain.NewInboxEvent(rec.ID, payload))
	}
	if err := d.inboxRepo.CreateBatch(ctx, events); err != nil {
		return nil, fmt.Errorf("inbox fan-out failed: %w", err)
	}
	result.InboxEvents = len(events)

	d.sendPush(ctx, recipients, payload, result)
	d.sendEmail(ctx, recipients, payload, result)

	return result, nil
}

func (d *fanoutDispatcher) sendPush(ctx context.Context, recipients []domain.UserProfile, payload domain.EventPayload, result *DispatchResult) {
	tokens := collectTokens(recipients)
	if len(tokens) == 0 {
		return
	}

	n := push.Notification{Title: payload.Title, Body: payload.Body}

	if payload.Type == domain.EventTypeJoinRequestStatus {
		// At most one recipient exists on the status path.
		if err := d.pusher.Send(ctx, tokens[0], n, payload.Data()); err != nil {
			logger.Error("Push delivery failed", "join_request_id", payload.JoinRequestID, "error", err)
			result.PushFailed++
			return
		}
		result.PushSent++
		return
	}

	sent, failed, err := d.pusher.SendMulticast(ctx, tokens, n, payload.Data())
	if err != nil {
		logger.Error("Multicast push delivery failed", "join_request_id", payload.JoinRequestID, "tokens", len(tokens), "error", err)
		result.PushFailed += len(tokens)
		return
	}
	result.PushSent += sent
	result.PushFailed += failed
}

func (d *fanoutDispatcher) sendEmail(ctx context.Context, recipients []domain.UserProfile, payload domain.EventPayload, result *DispatchResult) {
	if d.emailSvc == nil || payload.Type != domain.EventTypeJoinRequestCreated {
		return
	}
	for _, rec := range recipients {
		if rec.Email == "" {
			continue
		}
		if err := d.emailSvc.SendJoinRequestAlert(ctx, rec.Email, rec.DisplayName, payload.Title, payload.Body); err != nil {
			logger.Error("Email alert failed", "recipient", rec.ID, "error", err)
			continue
		}
		result.EmailSent++
	}
}

// collectTokens gathers registered push tokens. Recipients are already
// deduplicated by identity, and duplicate tokens are dropped as well.
func collectTokens(recipients []domain.UserProfile) []string {
	seen := make(map[string]bool, len(recipients))
	tokens := make([]string, 0, len(recipients))
	for _, rec := range recipients {
		if rec.PushToken == "" || seen[rec.PushToken] {
			continue
		}
		seen[rec.PushToken] = true
		tokens = append(tokens, rec.PushToken)
	}
	return tokens
}
