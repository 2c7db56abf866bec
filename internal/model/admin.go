package model

import (
	"time"
)

// Admin 管理员
type Admin struct {
	ID        uint      `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" gorm:"size:100;uniqueIndex"`
	Password  string    `json:"-" db:"password" gorm:"size:100"` // bcrypt 哈希
	IsSuper   bool      `json:"is_super" db:"is_super"`          // 超级管理员
	RoleID    uint      `json:"role_id" db:"role_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// AdminLog 管理员登录日志
type AdminLog struct {
	ID        uint      `json:"id" db:"id"`
	AdminID   uint      `json:"admin_id" db:"admin_id"`
	IP        string    `json:"ip" db:"ip" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// AdminLogWithAdmin 管理员登录日志列表行
type AdminLogWithAdmin struct {
	AdminLog
	AdminName string `json:"admin_name" db:"admin_name"`
}

// OperationLog 管理员操作日志
type OperationLog struct {
	ID        uint      `json:"id" db:"id"`
	AdminID   uint      `json:"admin_id" db:"admin_id"`
	IP        string    `json:"ip" db:"ip" gorm:"size:100"`
	Reason    string    `json:"reason" db:"reason" gorm:"size:600"` // 操作原因
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// OperationLogWithAdmin 操作日志列表行
type OperationLogWithAdmin struct {
	OperationLog
	AdminName string `json:"admin_name" db:"admin_name"`
}

// Role 角色（权限分组，未被任何处理器强制执行）
type Role struct {
	ID        uint      `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" gorm:"size:100;uniqueIndex"`
	Auths     string    `json:"auths" db:"auths" gorm:"size:600"` // 权限 ID 列表，逗号分隔
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// Auth 权限
type Auth struct {
	ID        uint      `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" gorm:"size:100;uniqueIndex"`
	URL       string    `json:"url" db:"url" gorm:"size:255;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// SessionAdmin 专门用于 Session 存储的管理员信息结构
type SessionAdmin struct {
	ID   uint
	Name string
}

// Flash 一次性提示消息，随 Session 传递
type Flash struct {
	Category string // ok / error
	Message  string
}
