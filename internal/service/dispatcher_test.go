package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/push"
	"ministryhub-backend/internal/service"
)

func creationPayload() domain.EventPayload {
	return service.Compose(domain.ChangeKindCreated, "Youth Ministry", "M1", "jr1", "mem1", "")
}

func TestFanoutDispatcher_EmptyRecipientsIsNoOp(t *testing.T) {
	mockInbox := new(MockInboxRepo)
	mockPusher := new(MockPusher)
	d := service.NewFanoutDispatcher(mockInbox, mockPusher, nil)

	result, err := d.Dispatch(context.Background(), nil, creationPayload())
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Recipients)
	assert.Equal(t, 0, result.InboxEvents)
	mockInbox.AssertNotCalled(t, "CreateBatch")
	mockPusher.AssertNotCalled(t, "SendMulticast")
}

func TestFanoutDispatcher_CreationFanout(t *testing.T) {
	ctx := context.Background()
	mockInbox := new(MockInboxRepo)
	mockPusher := new(MockPusher)
	d := service.NewFanoutDispatcher(mockInbox, mockPusher, nil)

	recipients := []domain.UserProfile{
		{ID: "u1", PushToken: "tok1"},
		{ID: "u2", PushToken: "tok2"},
		{ID: "u3"}, // no token registered
	}

	mockInbox.On("CreateBatch", ctx, mock.MatchedBy(func(events []domain.InboxEvent) bool {
		if len(events) != 3 {
			return false
		}
		for _, ev := range events {
			if ev.ID != "join_request_created_jr1" || ev.Title != "New join request" {
				return false
			}
		}
		return events[0].RecipientID == "u1" && events[2].RecipientID == "u3"
	})).Return(nil).Once()
	mockPusher.On("SendMulticast", ctx, []string{"tok1", "tok2"}, push.Notification{
		Title: "New join request",
		Body:  "A new request to join Youth Ministry is awaiting review",
	}, mock.Anything).Return(2, 0, nil).Once()

	result, err := d.Dispatch(ctx, recipients, creationPayload())
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Recipients)
	assert.Equal(t, 3, result.InboxEvents)
	assert.Equal(t, 2, result.PushSent)
	assert.Equal(t, 0, result.PushFailed)

	mockInbox.AssertExpectations(t)
	mockPusher.AssertExpectations(t)
}

func TestFanoutDispatcher_BatchFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	mockInbox := new(MockInboxRepo)
	mockPusher := new(MockPusher)
	d := service.NewFanoutDispatcher(mockInbox, mockPusher, nil)

	mockInbox.On("CreateBatch", ctx, mock.Anything).Return(errors.New("store unavailable")).Once()

	_, err := d.Dispatch(ctx, []domain.UserProfile{{ID: "u1", PushToken: "tok1"}}, creationPayload())
	assert.Error(t, err)
	// No push attempt happens after the durable write fails.
	mockPusher.AssertNotCalled(t, "SendMulticast")
	mockPusher.AssertNotCalled(t, "Send")
}

func TestFanoutDispatcher_PushFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	mockInbox := new(MockInboxRepo)
	mockPusher := new(MockPusher)
	d := service.NewFanoutDispatcher(mockInbox, mockPusher, nil)

	mockInbox.On("CreateBatch", ctx, mock.Anything).Return(nil).Once()
	mockPusher.On("SendMulticast", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, errors.New("fcm unreachable")).Once()

	result, err := d.Dispatch(ctx, []domain.UserProfile{{ID: "u1", PushToken: "tok1"}}, creationPayload())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.InboxEvents)
	assert.Equal(t, 1, result.PushFailed)
}

func TestFanoutDispatcher_StatusPathUsesSingleSend(t *testing.T) {
	ctx := context.Background()
	mockInbox := new(MockInboxRepo)
	mockPusher := new(MockPusher)
	d := service.NewFanoutDispatcher(mockInbox, mockPusher, nil)

	payload := service.Compose(domain.ChangeKindStatusChanged, "Youth Ministry", "M1", "jr1", "mem123", domain.JoinRequestStatusRejected)

	mockInbox.On("CreateBatch", ctx, mock.Anything).Return(nil).Once()
	mockPusher.On("Send", ctx, "tok9", push.Notification{
		Title: "Join request rejected",
		Body:  "Your request to join Youth Ministry was rejected",
	}, mock.MatchedBy(func(data map[string]string) bool {
		return data["status"] == "rejected" && data["joinRequestId"] == "jr1"
	})).Return(nil).Once()

	result, err := d.Dispatch(ctx, []domain.UserProfile{{ID: "u9", PushToken: "tok9"}}, payload)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.PushSent)
	mockPusher.AssertNotCalled(t, "SendMulticast")
}

func TestFanoutDispatcher_DuplicateTokensCollapse(t *testing.T) {
	ctx := context.Background()
	mockInbox := new(MockInboxRepo)
	mockPusher := new(MockPusher)
	d := service.NewFanoutDispatcher(mockInbox, mockPusher, nil)

	recipients := []domain.UserProfile{
		{ID: "u1", PushToken: "shared"},
		{ID: "u2", PushToken: "shared"},
	}

	mockInbox.On("CreateBatch", ctx, mock.Anything).Return(nil).Once()
	mockPusher.On("SendMulticast", ctx, []string{"shared"}, mock.Anything, mock.Anything).Return(1, 0, nil).Once()

	_, err := d.Dispatch(ctx, recipients, creationPayload())
	assert.NoError(t, err)
	mockPusher.AssertExpectations(t)
}

func TestFanoutDispatcher_EmailChannel(t *testing.T) {
	ctx := context.Background()

	t.Run("CreationSendsToRecipientsWithEmail", func(t *testing.T) {
		mockInbox := new(MockInboxRepo)
		mockPusher := new(MockPusher)
		mockEmail := new(MockEmailService)
		d := service.NewFanoutDispatcher(mockInbox, mockPusher, mockEmail)

		recipients := []domain.UserProfile{
			{ID: "u1", Email: "a@example.com", DisplayName: "A"},
			{ID: "u2"}, // no email on file
		}
		mockInbox.On("CreateBatch", ctx, mock.Anything).Return(nil).Once()
		mockEmail.On("SendJoinRequestAlert", ctx, "a@example.com", "A", "New join request", mock.Anything).Return(nil).Once()

		result, err := d.Dispatch(ctx, recipients, creationPayload())
		assert.NoError(t, err)
		assert.Equal(t, 1, result.EmailSent)
		mockEmail.AssertExpectations(t)
	})

	t.Run("EmailFailureIsNonFatal", func(t *testing.T) {
		mockInbox := new(MockInboxRepo)
		mockPusher := new(MockPusher)
		mockEmail := new(MockEmailService)
		d := service.NewFanoutDispatcher(mockInbox, mockPusher, mockEmail)

		mockInbox.On("CreateBatch", ctx, mock.Anything).Return(nil).Once()
		mockEmail.On("SendJoinRequestAlert", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("sendgrid down")).Once()

		result, err := d.Dispatch(ctx, []domain.UserProfile{{ID: "u1", Email: "a@example.com"}}, creationPayload())
		assert.NoError(t, err)
		assert.Equal(t, 0, result.EmailSent)
	})
}
