package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/service"
)

func TestRecipientResolver_Creation(t *testing.T) {
	ctx := context.Background()

	t.Run("DedupAdminWhoIsAlsoLeader", func(t *testing.T) {
		mockUserRepo := new(MockUserProfileRepo)
		resolver := service.NewRecipientResolver(mockUserRepo)

		admins := []domain.UserProfile{
			{ID: "u1", Roles: []string{"admin"}, LeadershipMinistries: []string{"Youth Ministry"}},
			{ID: "u2", Roles: []string{"admin"}},
		}
		leaders := []domain.UserProfile{
			{ID: "u1", Roles: []string{"admin"}, LeadershipMinistries: []string{"Youth Ministry"}},
			{ID: "u3", LeadershipMinistries: []string{"Youth Ministry"}},
		}
		mockUserRepo.On("ListByRole", ctx, "admin").Return(admins, nil).Once()
		mockUserRepo.On("ListByLeadership", ctx, "Youth Ministry").Return(leaders, nil).Once()

		recipients, err := resolver.Resolve(ctx, domain.ChangeKindCreated, "Youth Ministry", "")
		assert.NoError(t, err)
		assert.Len(t, recipients, 3)

		seen := map[string]int{}
		for _, r := range recipients {
			seen[r.ID]++
		}
		assert.Equal(t, 1, seen["u1"], "admin who is also leader appears exactly once")
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("EmptyNameSkipsLeadershipBranch", func(t *testing.T) {
		mockUserRepo := new(MockUserProfileRepo)
		resolver := service.NewRecipientResolver(mockUserRepo)

		mockUserRepo.On("ListByRole", ctx, "admin").Return([]domain.UserProfile{{ID: "u2"}}, nil).Once()

		recipients, err := resolver.Resolve(ctx, domain.ChangeKindCreated, "", "")
		assert.NoError(t, err)
		assert.Len(t, recipients, 1)
		mockUserRepo.AssertNotCalled(t, "ListByLeadership")
	})

	t.Run("NoAdminsNoLeaders", func(t *testing.T) {
		mockUserRepo := new(MockUserProfileRepo)
		resolver := service.NewRecipientResolver(mockUserRepo)

		mockUserRepo.On("ListByRole", ctx, "admin").Return([]domain.UserProfile{}, nil).Once()
		mockUserRepo.On("ListByLeadership", ctx, "Youth Ministry").Return([]domain.UserProfile{}, nil).Once()

		recipients, err := resolver.Resolve(ctx, domain.ChangeKindCreated, "Youth Ministry", "")
		assert.NoError(t, err)
		assert.Empty(t, recipients)
	})

	t.Run("ReadFailureIsFatal", func(t *testing.T) {
		mockUserRepo := new(MockUserProfileRepo)
		resolver := service.NewRecipientResolver(mockUserRepo)

		mockUserRepo.On("ListByRole", ctx, "admin").Return(nil, errors.New("store unavailable")).Once()

		_, err := resolver.Resolve(ctx, domain.ChangeKindCreated, "Youth Ministry", "")
		assert.Error(t, err)
	})
}

func TestRecipientResolver_StatusChange(t *testing.T) {
	ctx := context.Background()

	t.Run("SingleLinkedProfile", func(t *testing.T) {
		mockUserRepo := new(MockUserProfileRepo)
		resolver := service.NewRecipientResolver(mockUserRepo)

		profile := &domain.UserProfile{ID: "u9", LinkedMemberID: "mem123"}
		mockUserRepo.On("FindByLinkedMember", ctx, "mem123").Return(profile, nil).Once()

		recipients, err := resolver.Resolve(ctx, domain.ChangeKindStatusChanged, "", "mem123")
		assert.NoError(t, err)
		assert.Len(t, recipients, 1)
		assert.Equal(t, "u9", recipients[0].ID)
	})

	t.Run("NoLinkedProfile", func(t *testing.T) {
		mockUserRepo := new(MockUserProfileRepo)
		resolver := service.NewRecipientResolver(mockUserRepo)

		mockUserRepo.On("FindByLinkedMember", ctx, "mem123").Return(nil, nil).Once()

		recipients, err := resolver.Resolve(ctx, domain.ChangeKindStatusChanged, "", "mem123")
		assert.NoError(t, err)
		assert.Empty(t, recipients)
	})
}
