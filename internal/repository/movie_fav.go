package repository

import (
	"errors"

	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/utils"
	"gorm.io/gorm"
)

type MovieFavRepository struct {
	db *gorm.DB
}

func NewMovieFavRepository(db *gorm.DB) *MovieFavRepository {
	return &MovieFavRepository{db: db}
}

// FindByID 根据 ID 查找收藏
func (r *MovieFavRepository) FindByID(id uint) (*model.MovieFav, error) {
	var fav model.MovieFav
	err := r.db.First(&fav, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &fav, nil
}

// Delete 删除收藏
func (r *MovieFavRepository) Delete(id uint, oplog *model.OperationLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.MovieFav{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(oplog).Error
	})
}

// List 收藏分页列表，关联电影片名和会员名，按创建时间倒序
func (r *MovieFavRepository) List(page int) ([]model.MovieFavWithRefs, utils.Pagination, error) {
	var favs []model.MovieFavWithRefs
	query := r.db.Model(&model.MovieFav{}).
		Select("movie_favs.*, movies.title AS movie_title, users.name AS user_name").
		Joins("LEFT JOIN movies ON movies.id = movie_favs.movie_id").
		Joins("LEFT JOIN users ON users.id = movie_favs.user_id").
		Order("movie_favs.created_at DESC")
	p, err := utils.Paginate(query, page, &favs)
	return favs, p, err
}
