package model

import (
	"time"
)

// User 会员
type User struct {
	ID        uint      `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" gorm:"size:100;uniqueIndex"`
	Password  string    `json:"-" db:"password" gorm:"size:100"` // bcrypt 哈希
	Email     string    `json:"email" db:"email" gorm:"size:100;uniqueIndex"`
	Phone     string    `json:"phone" db:"phone" gorm:"size:100;uniqueIndex"`
	Info      string    `json:"info" db:"info" gorm:"type:text"`             // 个人简介
	Face      string    `json:"face" db:"face" gorm:"size:255;uniqueIndex"`  // 头像文件名
	UUID      string    `json:"uuid" db:"uuid" gorm:"size:255;uniqueIndex"`  // 外部唯一标识
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// Userlog 会员登录日志
type Userlog struct {
	ID        uint      `json:"id" db:"id"`
	UserID    uint      `json:"user_id" db:"user_id"`
	IP        string    `json:"ip" db:"ip" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// UserlogWithUser 会员登录日志列表行
type UserlogWithUser struct {
	Userlog
	UserName string `json:"user_name" db:"user_name"`
}

// Comment 评论
type Comment struct {
	ID        uint      `json:"id" db:"id"`
	Content   string    `json:"content" db:"content" gorm:"type:text"`
	MovieID   uint      `json:"movie_id" db:"movie_id"`
	UserID    uint      `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// CommentWithRefs 评论列表行（关联电影和会员）
type CommentWithRefs struct {
	Comment
	MovieTitle string `json:"movie_title" db:"movie_title"`
	UserName   string `json:"user_name" db:"user_name"`
}

// MovieFav 电影收藏
type MovieFav struct {
	ID        uint      `json:"id" db:"id"`
	MovieID   uint      `json:"movie_id" db:"movie_id"`
	UserID    uint      `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// MovieFavWithRefs 收藏列表行（关联电影和会员）
type MovieFavWithRefs struct {
	MovieFav
	MovieTitle string `json:"movie_title" db:"movie_title"`
	UserName   string `json:"user_name" db:"user_name"`
}
