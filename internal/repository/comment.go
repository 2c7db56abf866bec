package repository

import (
	"errors"

	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/utils"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// FindByID 根据 ID 查找评论
func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Delete 删除评论
func (r *CommentRepository) Delete(id uint, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Comment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(oplog).Error
	})
}

// List 评论分页列表，关联电影片名和会员名，按创建时间倒序
func (r *CommentRepository) List(page int) ([]model.CommentWithRefs, utils.Pagination, error) {
	var comments []model.CommentWithRefs
	query := r.db.Model(&model.Comment{}).
		Select("comments.*, movies.title AS movie_title, users.name AS user_name").
		Joins("LEFT JOIN movies ON movies.id = comments.movie_id").
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Order("comments.created_at DESC")
	p, err := utils.Paginate(query, page, &comments)
	return comments, p, err
}
