package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/push"
	"ministryhub-backend/internal/service"
)

// MockMinistryRepo
type MockMinistryRepo struct {
	mock.Mock
}

func (m *MockMinistryRepo) GetByID(ctx context.Context, id string) (*domain.Ministry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ministry), args.Error(1)
}

// MockUserProfileRepo
type MockUserProfileRepo struct {
	mock.Mock
}

func (m *MockUserProfileRepo) GetByID(ctx context.Context, uid string) (*domain.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserProfileRepo) ListByRole(ctx context.Context, role string) ([]domain.UserProfile, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}
func (m *MockUserProfileRepo) ListByLeadership(ctx context.Context, ministryName string) ([]domain.UserProfile, error) {
	args := m.Called(ctx, ministryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}
func (m *MockUserProfileRepo) FindByLinkedMember(ctx context.Context, memberID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserProfileRepo) AddRole(ctx context.Context, uid, role string) error {
	args := m.Called(ctx, uid, role)
	return args.Error(0)
}

// MockInboxRepo
type MockInboxRepo struct {
	mock.Mock
}

func (m *MockInboxRepo) CreateBatch(ctx context.Context, events []domain.InboxEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
func (m *MockInboxRepo) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.InboxEvent, error) {
	args := m.Called(ctx, recipientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InboxEvent), args.Error(1)
}
func (m *MockInboxRepo) MarkRead(ctx context.Context, recipientID, eventID string) error {
	args := m.Called(ctx, recipientID, eventID)
	return args.Error(0)
}
func (m *MockInboxRepo) PruneRead(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

// MockPusher
type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) Send(ctx context.Context, token string, n push.Notification, data map[string]string) error {
	args := m.Called(ctx, token, n, data)
	return args.Error(0)
}
func (m *MockPusher) SendMulticast(ctx context.Context, tokens []string, n push.Notification, data map[string]string) (int, int, error) {
	args := m.Called(ctx, tokens, n, data)
	return args.Int(0), args.Int(1), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendJoinRequestAlert(ctx context.Context, toEmail, toName, title, body string) error {
	args := m.Called(ctx, toEmail, toName, title, body)
	return args.Error(0)
}

// MockResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, kind domain.ChangeKind, ministryName, requesterID string) ([]domain.UserProfile, error) {
	args := m.Called(ctx, kind, ministryName, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

// MockDispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, recipients []domain.UserProfile, payload domain.EventPayload) (*service.DispatchResult, error) {
	args := m.Called(ctx, recipients, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DispatchResult), args.Error(1)
}
