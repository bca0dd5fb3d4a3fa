package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "flowt.dev/flowt/internal/models"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, name, permissions string) (*model.Group, error) {
	group := &model.Group{
		ID:          uuid.NewString(),
		Name:        name,
		Permissions: permissions,
	}

	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return nil, err
	}

	return group, nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id string) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) List(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.WithContext(ctx).Preload("Users").Order("name asc").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) Update(ctx context.Context, id, name, permissions string) error {
	result := r.db.WithContext(ctx).Model(&model.Group{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "permissions": permissions})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a group and detaches its members. Users survive with a
// null group id.
func (r *GroupRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, "id = ?", id).Error
	})
}
