package repository

import (
	"errors"
	"fmt"

	"github.com/user/movieadmin/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrDuplicate 唯一字段值已被占用
	ErrDuplicate = errors.New("字段值已经存在")
)

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		// 将底层唯一约束冲突翻译为 gorm.ErrDuplicatedKey，
		// 兜住"先查再插"在并发下漏过的冲突
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// Migrate 建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Admin{},
		&model.AdminLog{},
		&model.OperationLog{},
		&model.Role{},
		&model.Auth{},
		&model.Tag{},
		&model.Movie{},
		&model.Preview{},
		&model.User{},
		&model.Userlog{},
		&model.Comment{},
		&model.MovieFav{},
	)
}

// Repositories 仓库集合
type Repositories struct {
	DB       *gorm.DB
	Admin    *AdminRepository
	Tag      *TagRepository
	Movie    *MovieRepository
	Preview  *PreviewRepository
	User     *UserRepository
	Comment  *CommentRepository
	MovieFav *MovieFavRepository
	Audit    *AuditRepository
	Role     *RoleRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:       db,
		Admin:    NewAdminRepository(db),
		Tag:      NewTagRepository(db),
		Movie:    NewMovieRepository(db),
		Preview:  NewPreviewRepository(db),
		User:     NewUserRepository(db),
		Comment:  NewCommentRepository(db),
		MovieFav: NewMovieFavRepository(db),
		Audit:    NewAuditRepository(db),
		Role:     NewRoleRepository(db),
	}
}

// translateDuplicate 把底层唯一约束冲突归一到 ErrDuplicate
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
