package services

import (
	"context"
	"encoding/json"

	"flowt.dev/flowt/internal/auth"
	"flowt.dev/flowt/internal/constants"
	apperrors "flowt.dev/flowt/internal/errors"
	model "flowt.dev/flowt/internal/models"
	repository "flowt.dev/flowt/internal/repositories"
)

// AdminService covers user and group administration plus the destructive
// database reset. Every method requires an administrator caller.
type AdminService struct {
	userRepo        *repository.UserRepository
	groupRepo       *repository.GroupRepository
	maintenanceRepo *repository.MaintenanceRepository
}

func NewAdminService(
	userRepo *repository.UserRepository,
	groupRepo *repository.GroupRepository,
	maintenanceRepo *repository.MaintenanceRepository,
) *AdminService {
	return &AdminService{
		userRepo:        userRepo,
		groupRepo:       groupRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

// CreateUser creates a member of the given group, or an administrator when
// the group id is the admin sentinel. Admins never carry a group id.
func (s *AdminService) CreateUser(ctx context.Context, caller auth.Caller, username, password, groupID string) error {
	if !caller.IsAdmin {
		return apperrors.ErrUnauthorized
	}
	if username == "" || password == "" {
		return apperrors.ErrMissingFields
	}

	isAdmin := groupID == constants.AdminGroupSentinel

	var group *string
	if !isAdmin && groupID != "" {
		if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
			return apperrors.ErrGroupNotFound
		}
		group = &groupID
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := s.userRepo.Create(ctx, username, hash, isAdmin, group); err != nil {
		return apperrors.ErrUsernameTaken
	}
	return nil
}

func (s *AdminService) DeleteUser(ctx context.Context, caller auth.Caller, userID string) error {
	if !caller.IsAdmin {
		return apperrors.ErrUnauthorized
	}
	if caller.ID == userID {
		return apperrors.ErrCannotDeleteSelf
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return apperrors.ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, userID)
}

func (s *AdminService) CreateGroup(ctx context.Context, caller auth.Caller, name string, permissions []string) error {
	if !caller.IsAdmin {
		return apperrors.ErrUnauthorized
	}
	if name == "" {
		return apperrors.ErrMissingName
	}

	serialized, err := serializePermissions(permissions)
	if err != nil {
		return err
	}

	_, err = s.groupRepo.Create(ctx, name, serialized)
	return err
}

func (s *AdminService) UpdateGroup(ctx context.Context, caller auth.Caller, groupID, name string, permissions []string) error {
	if !caller.IsAdmin {
		return apperrors.ErrUnauthorized
	}
	if name == "" {
		return apperrors.ErrMissingName
	}

	serialized, err := serializePermissions(permissions)
	if err != nil {
		return err
	}

	if err := s.groupRepo.Update(ctx, groupID, name, serialized); err != nil {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

// DeleteGroup detaches member users (group id nulled, accounts kept) and
// removes the group.
func (s *AdminService) DeleteGroup(ctx context.Context, caller auth.Caller, groupID string) error {
	if !caller.IsAdmin {
		return apperrors.ErrUnauthorized
	}
	if _, err := s.groupRepo.FindByID(ctx, groupID); err != nil {
		return apperrors.ErrGroupNotFound
	}
	return s.groupRepo.Delete(ctx, groupID)
}

func (s *AdminService) ListGroups(ctx context.Context, caller auth.Caller) ([]model.Group, error) {
	if !caller.IsAdmin {
		return nil, apperrors.ErrUnauthorized
	}
	return s.groupRepo.List(ctx)
}

// UpdateUserBoards replaces the full set of boards a user is a member of.
func (s *AdminService) UpdateUserBoards(ctx context.Context, caller auth.Caller, userID string, boardIDs []string) error {
	if !caller.IsAdmin {
		return apperrors.ErrUnauthorized
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return apperrors.ErrUserNotFound
	}
	return s.userRepo.ReplaceMemberBoards(ctx, userID, boardIDs)
}

// ListUsers returns id/username pairs for pickers; any session may call it.
func (s *AdminService) ListUsers(ctx context.Context) ([]UserRef, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]UserRef, 0, len(users))
	for i := range users {
		refs = append(refs, UserRef{ID: users[i].ID, Username: users[i].Username})
	}
	return refs, nil
}

func (s *AdminService) ListEligibleBoardUsers(ctx context.Context, boardID string) ([]UserRef, error) {
	users, err := s.userRepo.ListEligibleForBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	refs := make([]UserRef, 0, len(users))
	for i := range users {
		refs = append(refs, UserRef{ID: users[i].ID, Username: users[i].Username})
	}
	return refs, nil
}

func (s *AdminService) UserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	user, err := s.userRepo.FindProfile(ctx, userID, constants.DoneColumnTitle)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	profile := &UserProfile{
		ID:            user.ID,
		Username:      user.Username,
		IsAdmin:       user.IsAdmin,
		AssignedTasks: assignedTasks(user.AssignedTasks),
	}
	if user.Group != nil {
		profile.GroupName = user.Group.Name
	}
	return profile, nil
}

// ResetDatabase wipes the instance back to first-time setup.
func (s *AdminService) ResetDatabase(ctx context.Context, caller auth.Caller) error {
	if !caller.IsAdmin {
		return apperrors.ErrUnauthorized
	}
	if err := s.maintenanceRepo.Reset(ctx); err != nil {
		return apperrors.ErrResetFailed
	}
	return nil
}

func serializePermissions(permissions []string) (string, error) {
	if permissions == nil {
		permissions = []string{}
	}
	raw, err := json.Marshal(permissions)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
