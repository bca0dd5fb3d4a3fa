package services

import (
	"context"
	"encoding/json"

	apperrors "flowt.dev/flowt/internal/errors"
	repository "flowt.dev/flowt/internal/repositories"
)

// PermissionService maps (userID, permission key) to a yes/no answer.
// Administrators pass every check; everyone else is checked against their
// group's stored permission list; users without a group are denied.
type PermissionService struct {
	userRepo  *repository.UserRepository
	groupRepo *repository.GroupRepository
}

func NewPermissionService(userRepo *repository.UserRepository, groupRepo *repository.GroupRepository) *PermissionService {
	return &PermissionService{userRepo: userRepo, groupRepo: groupRepo}
}

// Has is a pure read-only check; "not permitted" is a false return, never
// an error.
func (s *PermissionService) Has(ctx context.Context, userID, permission string) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, nil
	}

	if user.IsAdmin {
		return true, nil
	}

	if user.GroupID == nil {
		return false, nil
	}

	group, err := s.groupRepo.FindByID(ctx, *user.GroupID)
	if err != nil {
		return false, nil
	}

	var permissions []string
	if err := json.Unmarshal([]byte(group.Permissions), &permissions); err != nil {
		return false, nil
	}

	for _, p := range permissions {
		if p == permission {
			return true, nil
		}
	}
	return false, nil
}

// Require translates a failed check into the uniform permission error.
func (s *PermissionService) Require(ctx context.Context, userID, permission string) error {
	ok, err := s.Has(ctx, userID, permission)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
