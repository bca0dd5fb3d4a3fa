package services

import (
	"context"
	"testing"

	"flowt.dev/flowt/internal/constants"
)

func TestPermissionService_AdminPassesEveryCheck(t *testing.T) {
	e := newEnv(t)
	admin := e.createAdmin(t, "root")

	for _, key := range constants.AllPermissions {
		ok, err := e.permissions.Has(context.Background(), admin.ID, key)
		if err != nil {
			t.Fatalf("Has(%s) returned error: %v", key, err)
		}
		if !ok {
			t.Errorf("admin should hold %s regardless of group assignment", key)
		}
	}
}

func TestPermissionService_GroupGrantsListedKeysOnly(t *testing.T) {
	e := newEnv(t)
	member := e.createMember(t, "alice", `["create_task","edit_task"]`)

	ok, _ := e.permissions.Has(context.Background(), member.ID, constants.PermCreateTask)
	if !ok {
		t.Error("expected create_task to be granted by the group")
	}

	ok, _ = e.permissions.Has(context.Background(), member.ID, constants.PermDeleteTask)
	if ok {
		t.Error("expected delete_task to be denied")
	}
}

func TestPermissionService_NoGroupDeniesAll(t *testing.T) {
	e := newEnv(t)
	loner := e.createLoner(t, "bob")

	for _, key := range constants.AllPermissions {
		ok, _ := e.permissions.Has(context.Background(), loner.ID, key)
		if ok {
			t.Errorf("user without group should be denied %s", key)
		}
	}
}

func TestPermissionService_UnknownUserDenied(t *testing.T) {
	e := newEnv(t)

	ok, err := e.permissions.Has(context.Background(), "no-such-user", constants.PermEditTask)
	if err != nil {
		t.Fatalf("Has should not error for unknown users: %v", err)
	}
	if ok {
		t.Error("unknown user should be denied")
	}
}

func TestPermissionService_MalformedPermissionListDenies(t *testing.T) {
	e := newEnv(t)
	member := e.createMember(t, "carol", `not json`)

	ok, _ := e.permissions.Has(context.Background(), member.ID, constants.PermEditTask)
	if ok {
		t.Error("malformed permission list should deny instead of grant")
	}
}
