package repository

import (
	"time"

	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/utils"
	"gorm.io/gorm"
)

// RoleRepository 角色与权限。表结构存在但没有任何处理器做权限校验，
// 仅供后台页面维护数据。
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// CreateRole 创建角色
func (r *RoleRepository) CreateRole(name, auths string) (*model.Role, error) {
	role := &model.Role{
		Name:      name,
		Auths:     auths,
		CreatedAt: time.Now(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Role{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		return translateDuplicate(tx.Create(role).Error)
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

// CreateAuth 创建权限
func (r *RoleRepository) CreateAuth(name, url string) (*model.Auth, error) {
	auth := &model.Auth{
		Name:      name,
		URL:       url,
		CreatedAt: time.Now(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Auth{}).
			Where("name = ? OR url = ?", name, url).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		return translateDuplicate(tx.Create(auth).Error)
	})
	if err != nil {
		return nil, err
	}

	return auth, nil
}

// ListRoles 角色分页列表
func (r *RoleRepository) ListRoles(page int) ([]model.Role, utils.Pagination, error) {
	var roles []model.Role
	query := r.db.Model(&model.Role{}).Order("created_at DESC")
	p, err := utils.Paginate(query, page, &roles)
	return roles, p, err
}

// ListAuths 权限分页列表
func (r *RoleRepository) ListAuths(page int) ([]model.Auth, utils.Pagination, error) {
	var auths []model.Auth
	query := r.db.Model(&model.Auth{}).Order("created_at DESC")
	p, err := utils.Paginate(query, page, &auths)
	return auths, p, err
}
