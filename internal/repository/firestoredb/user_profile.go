package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ministryhub-backend/internal/domain"
)

type userProfileRepo struct {
	client *firestore.Client
}

func (r *userProfileRepo) GetByID(ctx context.Context, uid string) (*domain.UserProfile, error) {
	snap, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile %s: %w", uid, err)
	}
	return decodeProfile(snap)
}

func (r *userProfileRepo) ListByRole(ctx context.Context, role string) ([]domain.UserProfile, error) {
	query := r.client.Collection(usersCollection).Where("roles", "array-contains", role)
	profiles, err := r.collect(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles by role %s: %w", role, err)
	}
	return profiles, nil
}

func (r *userProfileRepo) ListByLeadership(ctx context.Context, ministryName string) ([]domain.UserProfile, error) {
	query := r.client.Collection(usersCollection).Where("leadershipMinistries", "array-contains", ministryName)
	profiles, err := r.collect(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles by leadership %q: %w", ministryName, err)
	}
	return profiles, nil
}

func (r *userProfileRepo) FindByLinkedMember(ctx context.Context, memberID string) (*domain.UserProfile, error) {
	query := r.client.Collection(usersCollection).Where("linkedMemberId", "==", memberID).Limit(1)
	profiles, err := r.collect(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile by linked member %s: %w", memberID, err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

func (r *userProfileRepo) AddRole(ctx context.Context, uid, role string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "roles", Value: firestore.ArrayUnion(role)},
	})
	if err != nil {
		return fmt.Errorf("failed to add role %s to profile %s: %w", role, uid, err)
	}
	return nil
}

func (r *userProfileRepo) collect(ctx context.Context, query firestore.Query) ([]domain.UserProfile, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var profiles []domain.UserProfile
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		p, err := decodeProfile(snap)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func decodeProfile(snap *firestore.DocumentSnapshot) (*domain.UserProfile, error) {
	var p domain.UserProfile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode user profile %s: %w", snap.Ref.ID, err)
	}
	p.ID = snap.Ref.ID
	return &p, nil
}
