package repository

import (
	"errors"

	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/utils"
	"gorm.io/gorm"
)

type PreviewRepository struct {
	db *gorm.DB
}

func NewPreviewRepository(db *gorm.DB) *PreviewRepository {
	return &PreviewRepository{db: db}
}

// Create 创建预告
func (r *PreviewRepository) Create(preview *model.Preview, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Preview{}).Where("title = ?", preview.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		if err := tx.Create(preview).Error; err != nil {
			return translateDuplicate(err)
		}
		return tx.Create(oplog).Error
	})
}

// FindByID 根据 ID 查找预告
func (r *PreviewRepository) FindByID(id uint) (*model.Preview, error) {
	var preview model.Preview
	err := r.db.First(&preview, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &preview, nil
}

// Update 修改预告，与本行原标题相同不算冲突
func (r *PreviewRepository) Update(preview *model.Preview, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Preview{}).
			Where("title = ? AND id <> ?", preview.Title, preview.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}

		res := tx.Model(&model.Preview{}).Where("id = ?", preview.ID).Updates(map[string]interface{}{
			"title": preview.Title,
			"logo":  preview.Logo,
		})
		if res.Error != nil {
			return translateDuplicate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(oplog).Error
	})
}

// Delete 删除预告
func (r *PreviewRepository) Delete(id uint, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Preview{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(oplog).Error
	})
}

// List 预告分页列表，按创建时间倒序
func (r *PreviewRepository) List(page int) ([]model.Preview, utils.Pagination, error) {
	var previews []model.Preview
	query := r.db.Model(&model.Preview{}).Order("created_at DESC")
	p, err := utils.Paginate(query, page, &previews)
	return previews, p, err
}

// StoredFilenames 已入库的海报文件名（孤儿文件清理用）
func (r *PreviewRepository) StoredFilenames() ([]string, error) {
	var logos []string
	err := r.db.Model(&model.Preview{}).Pluck("logo", &logos).Error
	return logos, err
}
