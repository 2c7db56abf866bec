package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploader 负责把上传文件落盘到配置目录，文件名由服务端生成
type Uploader struct {
	dir string
}

// NewUploader 创建上传服务
func NewUploader(dir string) *Uploader {
	return &Uploader{dir: dir}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// secureFilename 清洗客户端文件名：去掉路径部分和不安全字符。
// 清洗结果只用于提取扩展名，文件名本身会被重新生成。
func secureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

// generateName 生成存储文件名：秒级时间戳 + 随机标识 + 原扩展名
func generateName(original string) string {
	ext := filepath.Ext(original)
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return time.Now().Format("20060102150405") + token + ext
}

// Save 存储上传文件，返回生成的文件名
func (u *Uploader) Save(file *multipart.FileHeader) (string, error) {
	cleaned := secureFilename(file.Filename)
	if cleaned == "" {
		return "", errors.New("非法的文件名")
	}

	if err := os.MkdirAll(u.dir, 0o766); err != nil {
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	name := generateName(cleaned)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return name, nil
}

// Remove 删除一个已存储的文件（编辑替换旧文件时调用）。
// 只接受纯文件名，防止路径穿越。
func (u *Uploader) Remove(name string) error {
	if name == "" || name != filepath.Base(name) {
		return errors.New("非法的文件名")
	}
	err := os.Remove(filepath.Join(u.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir 上传目录路径
func (u *Uploader) Dir() string {
	return u.dir
}
