package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/movieadmin/internal/model"
)

// SessionAdminKey Session 中管理员信息的键名
const SessionAdminKey = "admin"

// AdminAuth 后台登录校验中间件。未登录时重定向到登录页，
// 并通过 next 参数保留原始请求路径，登录后跳回。
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		val := session.Get(SessionAdminKey)
		admin, ok := val.(model.SessionAdmin)
		if !ok {
			c.Redirect(http.StatusFound, "/admin/login/?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}

		// 将管理员信息存入上下文
		c.Set("admin_id", admin.ID)
		c.Set("admin_name", admin.Name)

		c.Next()
	}
}

// GetAdminID 从上下文获取管理员 ID（未登录返回 0）
func GetAdminID(c *gin.Context) uint {
	if adminID, exists := c.Get("admin_id"); exists {
		return adminID.(uint)
	}
	return 0
}

// GetAdminName 从上下文获取管理员账号（未登录返回空串）
func GetAdminName(c *gin.Context) string {
	if name, exists := c.Get("admin_name"); exists {
		return name.(string)
	}
	return ""
}
