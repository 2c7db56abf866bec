package repository

import (
	"time"

	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/utils"
	"gorm.io/gorm"
)

// AuditRepository 登录日志与操作日志，只追加
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// RecordLogin 记录一次管理员登录
func (r *AuditRepository) RecordLogin(adminID uint, ip string) error {
	return r.db.Create(&model.AdminLog{
		AdminID:   adminID,
		IP:        ip,
		CreatedAt: time.Now(),
	}).Error
}

// RecordUserLogin 记录一次会员登录
func (r *AuditRepository) RecordUserLogin(userID uint, ip string) error {
	return r.db.Create(&model.Userlog{
		UserID:    userID,
		IP:        ip,
		CreatedAt: time.Now(),
	}).Error
}

// ListOperations 操作日志分页列表，关联管理员名
func (r *AuditRepository) ListOperations(page int) ([]model.OperationLogWithAdmin, utils.Pagination, error) {
	var logs []model.OperationLogWithAdmin
	query := r.db.Model(&model.OperationLog{}).
		Select("operation_logs.*, admins.name AS admin_name").
		Joins("LEFT JOIN admins ON admins.id = operation_logs.admin_id").
		Order("operation_logs.created_at DESC")
	p, err := utils.Paginate(query, page, &logs)
	return logs, p, err
}

// ListAdminLogins 管理员登录日志分页列表
func (r *AuditRepository) ListAdminLogins(page int) ([]model.AdminLogWithAdmin, utils.Pagination, error) {
	var logs []model.AdminLogWithAdmin
	query := r.db.Model(&model.AdminLog{}).
		Select("admin_logs.*, admins.name AS admin_name").
		Joins("LEFT JOIN admins ON admins.id = admin_logs.admin_id").
		Order("admin_logs.created_at DESC")
	p, err := utils.Paginate(query, page, &logs)
	return logs, p, err
}

// ListUserLogins 会员登录日志分页列表
func (r *AuditRepository) ListUserLogins(page int) ([]model.UserlogWithUser, utils.Pagination, error) {
	var logs []model.UserlogWithUser
	query := r.db.Model(&model.Userlog{}).
		Select("userlogs.*, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = userlogs.user_id").
		Order("userlogs.created_at DESC")
	p, err := utils.Paginate(query, page, &logs)
	return logs, p, err
}

// CountOperationsByAdmin 某管理员的操作条数（后台首页统计用）
func (r *AuditRepository) CountOperationsByAdmin(adminID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.OperationLog{}).Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}
