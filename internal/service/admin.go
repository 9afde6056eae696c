package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ministryhub-backend/internal/domain"
	"ministryhub-backend/internal/logger"
	"ministryhub-backend/internal/repository"
)

type adminService struct {
	userRepo    repository.UserProfileRepository
	allowlisted func(email string) bool
	emulator    bool
}

// NewAdminService creates the role-grant service. allowlisted decides whether
// a caller email may self-grant; emulator bypasses the allowlist in a
// designated test environment.
func NewAdminService(userRepo repository.UserProfileRepository, allowlisted func(email string) bool, emulator bool) AdminService {
	return &adminService{
		userRepo:    userRepo,
		allowlisted: allowlisted,
		emulator:    emulator,
	}
}

// GrantAdminRole adds the admin role to the caller's profile and, when one is
// linked, to the secondary profile. The role set is unordered, so re-granting
// is a no-op. All checks run before any mutation.
func (s *adminService) GrantAdminRole(ctx context.Context, callerUID, callerEmail string) error {
	if !s.emulator && !s.allowlisted(callerEmail) {
		return status.Errorf(codes.PermissionDenied, "caller %s is not permitted to grant the admin role", callerEmail)
	}

	profile, err := s.userRepo.GetByID(ctx, callerUID)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to load caller profile: %v", err)
	}
	if profile == nil {
		return status.Errorf(codes.FailedPrecondition, "caller %s has no profile document", callerUID)
	}

	if err := s.userRepo.AddRole(ctx, callerUID, domain.RoleAdmin); err != nil {
		return status.Errorf(codes.Internal, "failed to grant admin role: %v", err)
	}
	logger.Info("Granted admin role", "uid", callerUID)

	if profile.LinkedProfileID == "" {
		return nil
	}

	linked, err := s.userRepo.GetByID(ctx, profile.LinkedProfileID)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to load linked profile: %v", err)
	}
	if linked == nil {
		logger.Warn("Linked profile missing, skipping secondary grant", "uid", callerUID, "linked_profile_id", profile.LinkedProfileID)
		return nil
	}
	if err := s.userRepo.AddRole(ctx, profile.LinkedProfileID, domain.RoleAdmin); err != nil {
		return status.Errorf(codes.Internal, "failed to grant admin role to linked profile: %v", err)
	}
	logger.Info("Granted admin role to linked profile", "uid", callerUID, "linked_profile_id", profile.LinkedProfileID)
	return nil
}
