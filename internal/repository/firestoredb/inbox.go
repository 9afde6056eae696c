package firestoredb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"ministryhub-backend/internal/domain"
)

type inboxRepo struct {
	client *firestore.Client
}

// CreateBatch submits all inbox rows inside a single transaction so the fan-out
// is all-or-nothing. Set rather than Create keeps redelivery of the same
// trigger idempotent, since event IDs are deterministic.
func (r *inboxRepo) CreateBatch(ctx context.Context, events []domain.InboxEvent) error {
	if len(events) == 0 {
		return nil
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, ev := range events {
			ref := r.client.Collection(usersCollection).
				Doc(ev.RecipientID).
				Collection(inboxCollection).
				Doc(ev.ID)
			if err := tx.Set(ref, ev); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write inbox batch of %d events: %w", len(events), err)
	}
	return nil
}

func (r *inboxRepo) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.InboxEvent, error) {
	iter := r.client.Collection(usersCollection).
		Doc(recipientID).
		Collection(inboxCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var events []domain.InboxEvent
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list inbox for %s: %w", recipientID, err)
		}
		var ev domain.InboxEvent
		if err := snap.DataTo(&ev); err != nil {
			return nil, fmt.Errorf("failed to decode inbox event %s: %w", snap.Ref.ID, err)
		}
		ev.ID = snap.Ref.ID
		ev.RecipientID = recipientID
		events = append(events, ev)
	}
	return events, nil
}

func (r *inboxRepo) MarkRead(ctx context.Context, recipientID, eventID string) error {
	ref := r.client.Collection(usersCollection).
		Doc(recipientID).
		Collection(inboxCollection).
		Doc(eventID)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark inbox event %s read: %w", eventID, err)
	}
	return nil
}

func (r *inboxRepo) PruneRead(ctx context.Context, cutoff time.Time) (int, error) {
	iter := r.client.CollectionGroup(inboxCollection).
		Where("read", "==", true).
		Where("createdAt", "<", cutoff).
		Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, fmt.Errorf("failed to query prunable inbox events: %w", err)
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return deleted, fmt.Errorf("failed to delete inbox event %s: %w", snap.Ref.ID, err)
		}
		deleted++
	}
	return deleted, nil
}
