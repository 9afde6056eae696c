package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ministryhub-backend/internal/domain"
)

type ministryRepo struct {
	client *firestore.Client
}

func (r *ministryRepo) GetByID(ctx context.Context, id string) (*domain.Ministry, error) {
	snap, err := r.client.Collection(ministriesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ministry %s: %w", id, err)
	}

	var m domain.Ministry
	if err := snap.DataTo(&m); err != nil {
		return nil, fmt.Errorf("failed to decode ministry %s: %w", id, err)
	}
	m.ID = snap.Ref.ID
	return &m, nil
}
