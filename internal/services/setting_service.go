package services

import (
	"context"

	"flowt.dev/flowt/internal/auth"
	"flowt.dev/flowt/internal/constants"
	apperrors "flowt.dev/flowt/internal/errors"
	repository "flowt.dev/flowt/internal/repositories"
)

// SettingService reads and writes instance-wide configuration. Keys are
// canonical snake case; there is exactly one setting per logical key.
type SettingService struct {
	settingRepo *repository.SettingRepository
}

func NewSettingService(settingRepo *repository.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

func (s *SettingService) Get(ctx context.Context, key string) (string, error) {
	return s.settingRepo.Get(ctx, key)
}

func (s *SettingService) Update(ctx context.Context, caller auth.Caller, key, value string) error {
	if !caller.IsAdmin {
		return apperrors.ErrUnauthorized
	}
	return s.settingRepo.Upsert(ctx, key, value)
}

// Branding returns the values every page needs, with defaults for unset
// keys.
func (s *SettingService) Branding(ctx context.Context) (logoText, adminRoleName string, err error) {
	logoText, err = s.settingRepo.Get(ctx, constants.SettingLogoText)
	if err != nil {
		return "", "", err
	}
	if logoText == "" {
		logoText = "Flowt"
	}

	adminRoleName, err = s.settingRepo.Get(ctx, constants.SettingAdminRoleName)
	if err != nil {
		return "", "", err
	}
	if adminRoleName == "" {
		adminRoleName = "Administrator"
	}

	return logoText, adminRoleName, nil
}
