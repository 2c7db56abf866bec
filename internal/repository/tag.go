package repository

import (
	"errors"
	"time"

	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/utils"
	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create 创建标签，查重和操作日志与插入同处一个事务
func (r *TagRepository) Create(name string, oplog *model.OperationLog) (*model.Tag, error) {
	tag := &model.Tag{
		Name:      name,
		CreatedAt: time.Now(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Tag{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		if err := tx.Create(tag).Error; err != nil {
			return translateDuplicate(err)
		}
		return tx.Create(oplog).Error
	})
	if err != nil {
		return nil, err
	}

	return tag, nil
}

// FindByID 根据 ID 查找标签
func (r *TagRepository) FindByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// Update 修改标签名称，与本行原值相同不算冲突
func (r *TagRepository) Update(id uint, name string, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Tag{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}

		res := tx.Model(&model.Tag{}).Where("id = ?", id).Update("name", name)
		if res.Error != nil {
			return translateDuplicate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(oplog).Error
	})
}

// Delete 删除标签，不级联删除所属电影
func (r *TagRepository) Delete(id uint, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Tag{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(oplog).Error
	})
}

// List 标签分页列表，按创建时间倒序
func (r *TagRepository) List(page int) ([]model.Tag, utils.Pagination, error) {
	var tags []model.Tag
	query := r.db.Model(&model.Tag{}).Order("created_at DESC")
	p, err := utils.Paginate(query, page, &tags)
	return tags, p, err
}

// ListAll 获取全部标签（电影表单下拉用）
func (r *TagRepository) ListAll() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}
