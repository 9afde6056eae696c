package firestoredb

import (
	"cloud.google.com/go/firestore"

	"ministryhub-backend/internal/repository"
)

const (
	ministriesCollection = "ministries"
	usersCollection      = "users"
	inboxCollection      = "inbox"
)

// Store bundles all Firestore-backed repositories over one client.
type Store struct {
	MinistryRepository    repository.MinistryRepository
	UserProfileRepository repository.UserProfileRepository
	InboxRepository       repository.InboxRepository
}

// NewStore creates all repositories backed by the given Firestore client.
func NewStore(client *firestore.Client) *Store {
	return &Store{
		MinistryRepository:    &ministryRepo{client: client},
		UserProfileRepository: &userProfileRepo{client: client},
		InboxRepository:       &inboxRepo{client: client},
	}
}
