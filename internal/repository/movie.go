package repository

import (
	"errors"

	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/utils"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Create 创建电影，片名查重和操作日志与插入同处一个事务。
// 生成的文件名（url/logo）冲突概率极低，交给唯一约束兜底。
func (r *MovieRepository) Create(movie *model.Movie, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Movie{}).Where("title = ?", movie.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		if err := tx.Create(movie).Error; err != nil {
			return translateDuplicate(err)
		}
		return tx.Create(oplog).Error
	})
}

// FindByID 根据 ID 查找电影
func (r *MovieRepository) FindByID(id uint) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Update 修改电影，与本行原片名相同不算冲突
func (r *MovieRepository) Update(movie *model.Movie, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Movie{}).
			Where("title = ? AND id <> ?", movie.Title, movie.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}

		res := tx.Model(&model.Movie{}).Where("id = ?", movie.ID).Updates(map[string]interface{}{
			"title":        movie.Title,
			"url":          movie.URL,
			"info":         movie.Info,
			"logo":         movie.Logo,
			"star":         movie.Star,
			"tag_id":       movie.TagID,
			"area":         movie.Area,
			"length":       movie.Length,
			"release_time": movie.ReleaseTime,
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

// Delete 删除电影
func (r *MovieRepository) Delete(id uint, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Movie{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(oplog).Error
	})
}

// List 电影分页列表，关联标签名称，按创建时间倒序
func (r *MovieRepository) List(page int) ([]model.MovieWithTag, utils.Pagination, error) {
	var movies []model.MovieWithTag
	query := r.db.Model(&model.Movie{}).
		Select("movies.*, tags.name AS tag_name").
		Joins("LEFT JOIN tags ON tags.id = movies.tag_id").
		Order("movies.created_at DESC")
	p, err := utils.Paginate(query, page, &movies)
	return movies, p, err
}

// StoredFilenames 已入库的视频与封面文件名（孤儿文件清理用）
func (r *MovieRepository) StoredFilenames() ([]string, error) {
	var urls, logos []string
	if err := r.db.Model(&model.Movie{}).Pluck("url", &urls).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Movie{}).Pluck("logo", &logos).Error; err != nil {
		return nil, err
	}
	return append(urls, logos...), nil
}
