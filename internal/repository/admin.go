package repository

import (
	"errors"
	"time"

	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create 创建管理员
func (r *AdminRepository) Create(name, password string, isSuper bool, roleID uint) (*model.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Name:      name,
		Password:  string(hash),
		IsSuper:   isSuper,
		RoleID:    roleID,
		CreatedAt: time.Now(),
	}

	if err := r.db.Create(admin).Error; err != nil {
		return nil, translateDuplicate(err)
	}

	return admin, nil
}

// FindByName 根据账号查找管理员
func (r *AdminRepository) FindByName(name string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.Where("name = ?", name).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// FindByID 根据 ID 查找管理员
func (r *AdminRepository) FindByID(id uint) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.First(&admin, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// CheckPassword 验证密码
func (r *AdminRepository) CheckPassword(admin *model.Admin, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password))
	return err == nil
}

// UpdatePassword 更新密码，并在同一事务中记录操作日志
func (r *AdminRepository) UpdatePassword(adminID uint, newPassword string, oplog *model.OperationLog) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Admin{}).Where("id = ?", adminID).Update("password", string(hash))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(oplog).Error
	})
}

// List 管理员分页列表，按创建时间倒序
func (r *AdminRepository) List(page int) ([]model.Admin, utils.Pagination, error) {
	var admins []model.Admin
	query := r.db.Model(&model.Admin{}).Order("created_at DESC")
	p, err := utils.Paginate(query, page, &admins)
	return admins, p, err
}
