package services

import (
	"context"
	"errors"
	"testing"

	apperrors "flowt.dev/flowt/internal/errors"
)

func TestInitialSetup_FirstUserIsAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	needsSetup, err := e.authSvc.NeedsSetup(ctx)
	if err != nil {
		t.Fatalf("NeedsSetup failed: %v", err)
	}
	if !needsSetup {
		t.Fatal("fresh instance should require setup")
	}

	caller, err := e.authSvc.InitialSetup(ctx, "root", "secret")
	if err != nil {
		t.Fatalf("InitialSetup failed: %v", err)
	}
	if !caller.IsAdmin || caller.Username != "root" {
		t.Errorf("first user should be an administrator: %+v", caller)
	}

	needsSetup, _ = e.authSvc.NeedsSetup(ctx)
	if needsSetup {
		t.Error("setup should be complete after the first user")
	}

	if _, err := e.authSvc.InitialSetup(ctx, "again", "pw"); !errors.Is(err, apperrors.ErrSetupComplete) {
		t.Errorf("expected ErrSetupComplete, got %v", err)
	}
}

func TestInitialSetup_RequiresBothFields(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.authSvc.InitialSetup(ctx, "", "pw"); !errors.Is(err, apperrors.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
	if _, err := e.authSvc.InitialSetup(ctx, "root", ""); !errors.Is(err, apperrors.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestLogin_CollapsesFailureModes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.authSvc.InitialSetup(ctx, "root", "secret"); err != nil {
		t.Fatalf("InitialSetup failed: %v", err)
	}

	caller, err := e.authSvc.Login(ctx, "root", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if caller.Username != "root" || !caller.IsAdmin {
		t.Errorf("unexpected caller: %+v", caller)
	}

	// Unknown user and wrong password yield the same error.
	_, unknownErr := e.authSvc.Login(ctx, "nobody", "secret")
	_, wrongErr := e.authSvc.Login(ctx, "root", "wrong")
	if !errors.Is(unknownErr, apperrors.ErrInvalidCredentials) || !errors.Is(wrongErr, apperrors.ErrInvalidCredentials) {
		t.Errorf("both failures should be ErrInvalidCredentials, got %v and %v", unknownErr, wrongErr)
	}
	if unknownErr.Error() != "Invalid credentials" {
		t.Errorf("unexpected message: %q", unknownErr.Error())
	}
}

func TestLogin_UsernameCaseInsensitiveFallback(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.authSvc.InitialSetup(ctx, "Root", "secret"); err != nil {
		t.Fatalf("InitialSetup failed: %v", err)
	}

	caller, err := e.authSvc.Login(ctx, "root", "secret")
	if err != nil {
		t.Fatalf("case-insensitive lookup should succeed: %v", err)
	}
	if caller.Username != "Root" {
		t.Errorf("caller should carry the stored username, got %q", caller.Username)
	}
}
