package model

import (
	"time"
)

// Tag 电影标签
type Tag struct {
	ID        uint      `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" gorm:"size:100;uniqueIndex"` // 标签名称
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// Movie 电影
type Movie struct {
	ID          uint      `json:"id" db:"id"`
	Title       string    `json:"title" db:"title" gorm:"size:255;uniqueIndex"` // 片名
	URL         string    `json:"url" db:"url" gorm:"size:255;uniqueIndex"`     // 存储的视频文件名
	Info        string    `json:"info" db:"info" gorm:"type:text"`              // 简介
	Logo        string    `json:"logo" db:"logo" gorm:"size:255;uniqueIndex"`   // 存储的封面文件名
	Star        int       `json:"star" db:"star"`                               // 星级 1-5
	PlayNum     int64     `json:"play_num" db:"play_num"`                       // 播放量
	CommentNum  int64     `json:"comment_num" db:"comment_num"`                 // 评论量
	TagID       uint      `json:"tag_id" db:"tag_id"`                           // 所属标签
	Area        string    `json:"area" db:"area" gorm:"size:255"`               // 地区
	Length      string    `json:"length" db:"length" gorm:"size:100"`           // 时长
	ReleaseTime string    `json:"release_time" db:"release_time" gorm:"size:100"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"index"`
}

// MovieWithTag 电影列表行（关联标签名）
type MovieWithTag struct {
	Movie
	TagName string `json:"tag_name" db:"tag_name"`
}

// Preview 上映预告
type Preview struct {
	ID        uint      `json:"id" db:"id"`
	Title     string    `json:"title" db:"title" gorm:"size:255;uniqueIndex"`
	Logo      string    `json:"logo" db:"logo" gorm:"size:255;uniqueIndex"` // 存储的海报文件名
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"index"`
}
