package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "flowt.dev/flowt/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string, isAdmin bool, groupID *string) (*model.User, error) {
	// Admins never belong to a group; the two role representations are
	// mutually exclusive.
	if isAdmin {
		groupID = nil
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: passwordHash,
		IsAdmin:  isAdmin,
		GroupID:  groupID,
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Preload("Group").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername tries an exact match first and falls back to a
// case-insensitive scan, so logins are forgiving about capitalization.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err == nil {
		return &user, nil
	}

	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Select("id", "username", "is_admin", "group_id").
		Order("username asc").
		Find(&users).Error
	return users, err
}

// ListEligibleForBoard returns users who may be assigned tasks on a board:
// administrators, the board owner, and board members.
func (r *UserRepository) ListEligibleForBoard(ctx context.Context, boardID string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Select("users.id", "users.username").
		Where("users.is_admin = ?", true).
		Or("users.id IN (?)", r.db.Table("boards").Select("owner_id").Where("id = ?", boardID)).
		Or("users.id IN (?)", r.db.Table("board_members").Select("user_id").Where("board_id = ?", boardID)).
		Order("users.username asc").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM board_members WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Task{}).Where("assignee_id = ?", id).Update("assignee_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, "id = ?", id).Error
	})
}

// ReplaceMemberBoards sets the full board-membership list for a user,
// replacing whatever was there before.
func (r *UserRepository) ReplaceMemberBoards(ctx context.Context, userID string, boardIDs []string) error {
	user := model.User{ID: userID}

	boards := make([]model.Board, 0, len(boardIDs))
	for _, id := range boardIDs {
		boards = append(boards, model.Board{ID: id})
	}

	return r.db.WithContext(ctx).Model(&user).Association("MemberBoards").Replace(boards)
}

// FindProfile loads a user with their open assigned tasks ordered by due
// date, plus group context.
func (r *UserRepository) FindProfile(ctx context.Context, id string, doneColumnTitle string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Group").
		Preload("AssignedTasks", func(db *gorm.DB) *gorm.DB {
			return db.
				Where("column_id IN (?)", db.Session(&gorm.Session{NewDB: true}).Table("columns").Select("id").Where("title <> ?", doneColumnTitle)).
				Order("due_date asc")
		}).
		Preload("AssignedTasks.Labels").
		Preload("AssignedTasks.Column").
		Preload("AssignedTasks.Column.Board").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
