package service

import (
	"os"
	"path/filepath"
	"time"

	"github.com/user/movieadmin/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CleanupService 定期清理上传目录中不再被任何记录引用的文件。
// 编辑替换时旧文件会立即删除，这里兜住中途崩溃等情况遗留的孤儿文件。
type CleanupService struct {
	repos    *repository.Repositories
	uploader *Uploader
	log      *zap.Logger
}

// NewCleanupService 创建清理服务
func NewCleanupService(repos *repository.Repositories, uploader *Uploader, log *zap.Logger) *CleanupService {
	return &CleanupService{repos: repos, uploader: uploader, log: log}
}

// Start 启动定时清理任务
func (s *CleanupService) Start() {
	ticker := time.NewTicker(24 * time.Hour)

	// 启动时先运行一次
	go s.runCleanup()

	go func() {
		for range ticker.C {
			s.runCleanup()
		}
	}()
}

func (s *CleanupService) runCleanup() {
	removed, err := s.SweepOrphans(24 * time.Hour)
	if err != nil {
		s.log.Error("清理孤儿文件失败", zap.Error(err))
		return
	}
	if removed > 0 {
		s.log.Info("已清理孤儿文件", zap.Int("count", removed))
	}
}

// SweepOrphans 删除上传目录中未被引用且早于 minAge 的文件，返回删除数量
func (s *CleanupService) SweepOrphans(minAge time.Duration) (int, error) {
	var movieFiles, previewFiles []string

	var g errgroup.Group
	g.Go(func() error {
		var err error
		movieFiles, err = s.repos.Movie.StoredFilenames()
		return err
	})
	g.Go(func() error {
		var err error
		previewFiles, err = s.repos.Preview.StoredFilenames()
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	referenced := make(map[string]bool, len(movieFiles)+len(previewFiles))
	for _, name := range movieFiles {
		referenced[name] = true
	}
	for _, name := range previewFiles {
		referenced[name] = true
	}

	entries, err := os.ReadDir(s.uploader.Dir())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-minAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			// 太新的文件可能属于尚未提交的请求，跳过
			continue
		}
		if err := os.Remove(filepath.Join(s.uploader.Dir(), entry.Name())); err != nil {
			s.log.Warn("删除孤儿文件失败", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		removed++
	}

	return removed, nil
}
