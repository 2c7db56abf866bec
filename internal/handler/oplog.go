package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/movieadmin/internal/utils"
	"go.uber.org/zap"
)

// OpLogList 操作日志列表
func (h *Handler) OpLogList(c *gin.Context) {
	page := utils.PageFromParam(c)
	logs, pagination, err := h.Repos.Audit.ListOperations(page)
	if err != nil {
		h.Log.Error("查询操作日志失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "oplog_list.html", h.RenderData(c, gin.H{
		"Title":      "操作日志 - " + h.Config.SiteName,
		"Logs":       logs,
		"Pagination": pagination,
	}))
}

// AdminLoginLogList 管理员登录日志列表
func (h *Handler) AdminLoginLogList(c *gin.Context) {
	page := utils.PageFromParam(c)
	logs, pagination, err := h.Repos.Audit.ListAdminLogins(page)
	if err != nil {
		h.Log.Error("查询管理员登录日志失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "adminloginlog_list.html", h.RenderData(c, gin.H{
		"Title":      "登录日志 - " + h.Config.SiteName,
		"Logs":       logs,
		"Pagination": pagination,
	}))
}

// UserLoginLogList 会员登录日志列表
func (h *Handler) UserLoginLogList(c *gin.Context) {
	page := utils.PageFromParam(c)
	logs, pagination, err := h.Repos.Audit.ListUserLogins(page)
	if err != nil {
		h.Log.Error("查询会员登录日志失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "userloginlog_list.html", h.RenderData(c, gin.H{
		"Title":      "会员登录日志 - " + h.Config.SiteName,
		"Logs":       logs,
		"Pagination": pagination,
	}))
}
