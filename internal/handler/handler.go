package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/movieadmin/internal/config"
	"github.com/user/movieadmin/internal/middleware"
	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/repository"
	"github.com/user/movieadmin/internal/service"
	"go.uber.org/zap"
)

// Handler HTTP 处理器
type Handler struct {
	Repos    *repository.Repositories
	Config   *config.Config
	Uploader *service.Uploader
	Log      *zap.Logger

	throttle *loginThrottle
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{
		Repos:    repos,
		Config:   cfg,
		Uploader: service.NewUploader(cfg.UploadDir),
		Log:      log,
		throttle: newLoginThrottle(),
	}
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	res := gin.H{
		"SiteName":   h.Config.SiteName,
		"Path":       c.Request.URL.Path,
		"AdminID":    middleware.GetAdminID(c),
		"AdminName":  middleware.GetAdminName(c),
		"OnlineTime": time.Now().Format("2006-01-02 15:04:05"),
		"Flashes":    h.takeFlashes(c),
	}

	for k, v := range data {
		res[k] = v
	}

	return res
}

// flash 追加一条一次性提示消息
func (h *Handler) flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(model.Flash{Category: category, Message: message})
	session.Save()
}

// takeFlashes 取出并清空本次请求的提示消息
func (h *Handler) takeFlashes(c *gin.Context) []model.Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save()
	}

	flashes := make([]model.Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(model.Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}

// oplog 构造一条当前管理员的操作日志，随业务写入同一事务提交
func (h *Handler) oplog(c *gin.Context, reason string) *model.OperationLog {
	return &model.OperationLog{
		AdminID:   middleware.GetAdminID(c),
		IP:        c.ClientIP(),
		Reason:    reason,
		CreatedAt: time.Now(),
	}
}

// notFound 渲染 404 页面
func (h *Handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
		"Title": "页面未找到 - " + h.Config.SiteName,
	}))
}

// Index 后台首页
func (h *Handler) Index(c *gin.Context) {
	opCount, _ := h.Repos.Audit.CountOperationsByAdmin(middleware.GetAdminID(c))

	c.HTML(http.StatusOK, "index.html", h.RenderData(c, gin.H{
		"Title":   h.Config.SiteName,
		"OpCount": opCount,
	}))
}
