package services

import (
	"context"
	"errors"
	"testing"

	"flowt.dev/flowt/internal/constants"
	apperrors "flowt.dev/flowt/internal/errors"
)

func TestSettings_UpsertAndDefaults(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	admin := e.createAdmin(t, "root")

	// Unset keys read as empty, and branding falls back to defaults.
	value, err := e.settings.Get(ctx, constants.SettingLogoText)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "" {
		t.Errorf("unset key should read empty, got %q", value)
	}

	logo, role, err := e.settings.Branding(ctx)
	if err != nil {
		t.Fatalf("Branding failed: %v", err)
	}
	if logo != "Flowt" || role != "Administrator" {
		t.Errorf("unexpected defaults: %q %q", logo, role)
	}

	if err := e.settings.Update(ctx, admin, constants.SettingLogoText, "Acme"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := e.settings.Update(ctx, admin, constants.SettingLogoText, "Acme Corp"); err != nil {
		t.Fatalf("second Update failed: %v", err)
	}

	logo, _, _ = e.settings.Branding(ctx)
	if logo != "Acme Corp" {
		t.Errorf("update should overwrite, got %q", logo)
	}

	var count int64
	e.db.Table("system_settings").Where("key = ?", constants.SettingLogoText).Count(&count)
	if count != 1 {
		t.Errorf("expected a single row per key, got %d", count)
	}
}

func TestSettings_UpdateIsAdminOnly(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	loner := e.createLoner(t, "drifter")

	err := e.settings.Update(ctx, loner, constants.SettingAllowBoardCreation, "true")
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
