package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/security"
	"ministryhub-backend/internal/service"
)

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) HandleCreated(ctx context.Context, change *domain.JoinRequestChange) (*service.DispatchResult, error) {
	args := m.Called(ctx, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DispatchResult), args.Error(1)
}
func (m *MockNotifier) HandleStatusChanged(ctx context.Context, change *domain.JoinRequestChange) (*service.DispatchResult, error) {
	args := m.Called(ctx, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DispatchResult), args.Error(1)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) GrantAdminRole(ctx context.Context, callerUID, callerEmail string) error {
	args := m.Called(ctx, callerUID, callerEmail)
	return args.Error(0)
}

// MockInboxService
type MockInboxService struct {
	mock.Mock
}

func (m *MockInboxService) ListInbox(ctx context.Context, recipientID string, limit int) ([]domain.InboxEvent, error) {
	args := m.Called(ctx, recipientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InboxEvent), args.Error(1)
}
func (m *MockInboxService) MarkRead(ctx context.Context, recipientID, eventID string) error {
	args := m.Called(ctx, recipientID, eventID)
	return args.Error(0)
}

// MockVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, idToken string) (*security.Claims, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}
