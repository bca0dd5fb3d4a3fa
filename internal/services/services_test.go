package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"flowt.dev/flowt/internal/auth"
	model "flowt.dev/flowt/internal/models"
	repository "flowt.dev/flowt/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access database pool: %v", err)
	}
	// A single connection keeps the in-memory database alive for the whole
	// test.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Board{},
		&model.Column{},
		&model.Task{},
		&model.Subtask{},
		&model.Label{},
		&model.ActivityLog{},
		&model.SystemSetting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

// env bundles every repository and service against one database.
type env struct {
	db *gorm.DB

	userRepo     *repository.UserRepository
	groupRepo    *repository.GroupRepository
	boardRepo    *repository.BoardRepository
	columnRepo   *repository.ColumnRepository
	taskRepo     *repository.TaskRepository
	subtaskRepo  *repository.SubtaskRepository
	labelRepo    *repository.LabelRepository
	activityRepo *repository.ActivityRepository
	settingRepo  *repository.SettingRepository

	permissions *PermissionService
	authSvc     *AuthService
	boards      *BoardService
	tasks       *TaskService
	deps        *DependencyService
	admin       *AdminService
	settings    *SettingService
	activity    *ActivityService
}

func newEnv(t *testing.T) *env {
	db := setupTestDB(t)

	e := &env{
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		groupRepo:    repository.NewGroupRepository(db),
		boardRepo:    repository.NewBoardRepository(db),
		columnRepo:   repository.NewColumnRepository(db),
		taskRepo:     repository.NewTaskRepository(db),
		subtaskRepo:  repository.NewSubtaskRepository(db),
		labelRepo:    repository.NewLabelRepository(db),
		activityRepo: repository.NewActivityRepository(db),
		settingRepo:  repository.NewSettingRepository(db),
	}

	e.permissions = NewPermissionService(e.userRepo, e.groupRepo)
	e.authSvc = NewAuthService(e.userRepo)
	e.boards = NewBoardService(e.boardRepo, e.columnRepo, e.taskRepo, e.settingRepo, e.permissions)
	e.tasks = NewTaskService(e.taskRepo, e.subtaskRepo, e.labelRepo, e.activityRepo, e.permissions)
	e.deps = NewDependencyService(e.taskRepo)
	e.admin = NewAdminService(e.userRepo, e.groupRepo, repository.NewMaintenanceRepository(db))
	e.settings = NewSettingService(e.settingRepo)
	e.activity = NewActivityService(e.activityRepo)

	return e
}

func (e *env) createAdmin(t *testing.T, username string) auth.Caller {
	user, err := e.userRepo.Create(context.Background(), username, "hash", true, nil)
	if err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	return auth.Caller{ID: user.ID, Username: user.Username, IsAdmin: true}
}

// createMember creates a non-admin user in a group holding the given
// permissions.
func (e *env) createMember(t *testing.T, username string, permissions string) auth.Caller {
	group, err := e.groupRepo.Create(context.Background(), username+"-group", permissions)
	if err != nil {
		t.Fatalf("failed to create group: %v", err)
	}

	user, err := e.userRepo.Create(context.Background(), username, "hash", false, &group.ID)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return auth.Caller{ID: user.ID, Username: user.Username}
}

// createLoner creates a non-admin user without any group.
func (e *env) createLoner(t *testing.T, username string) auth.Caller {
	user, err := e.userRepo.Create(context.Background(), username, "hash", false, nil)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return auth.Caller{ID: user.ID, Username: user.Username}
}
