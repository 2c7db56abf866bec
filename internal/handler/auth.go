package handler

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/user/movieadmin/internal/middleware"
	"github.com/user/movieadmin/internal/model"
	"go.uber.org/zap"
)

const (
	maxLoginFailures   = 5
	loginFailureWindow = 15 * time.Minute
)

// loginThrottle 按来源 IP 记录最近的登录失败，条目数有上限
type loginThrottle struct {
	mu       sync.Mutex
	failures *lru.Cache[string, []time.Time]
}

func newLoginThrottle() *loginThrottle {
	cache, _ := lru.New[string, []time.Time](1024)
	return &loginThrottle{failures: cache}
}

// blocked 窗口期内失败次数是否已达上限
func (t *loginThrottle) blocked(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	times, ok := t.failures.Get(ip)
	if !ok {
		return false
	}

	cutoff := time.Now().Add(-loginFailureWindow)
	recent := times[:0]
	for _, ts := range times {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}
	t.failures.Add(ip, recent)

	return len(recent) >= maxLoginFailures
}

func (t *loginThrottle) recordFailure(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	times, _ := t.failures.Get(ip)
	t.failures.Add(ip, append(times, time.Now()))
}

func (t *loginThrottle) reset(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures.Remove(ip)
}

// LoginForm 登录表单
type LoginForm struct {
	Account  string `form:"account" binding:"required,max=100"`
	Password string `form:"password" binding:"required"`
}

// PasswordForm 修改密码表单
type PasswordForm struct {
	OldPassword string `form:"old_password" binding:"required"`
	NewPassword string `form:"new_password" binding:"required,min=6,max=100"`
}

// LoginPage 登录页面
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.RenderData(c, gin.H{
		"Title": "登录 - " + h.Config.SiteName,
		"Next":  c.Query("next"),
	}))
}

// Login 登录处理
func (h *Handler) Login(c *gin.Context) {
	ip := c.ClientIP()

	if h.throttle.blocked(ip) {
		h.flash(c, "error", "失败次数过多，请稍后再试!")
		c.Redirect(http.StatusFound, "/admin/login/")
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "请输入账号和密码!")
		c.Redirect(http.StatusFound, "/admin/login/")
		return
	}

	admin, err := h.Repos.Admin.FindByName(form.Account)
	if err != nil {
		h.Log.Error("查询管理员失败", zap.Error(err))
		h.flash(c, "error", "登录失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/login/")
		return
	}
	if admin == nil || !h.Repos.Admin.CheckPassword(admin, form.Password) {
		h.throttle.recordFailure(ip)
		h.flash(c, "error", "密码错误!")
		c.Redirect(http.StatusFound, "/admin/login/")
		return
	}

	h.throttle.reset(ip)

	// 建立 Session
	session := sessions.Default(c)
	session.Set(middleware.SessionAdminKey, model.SessionAdmin{
		ID:   admin.ID,
		Name: admin.Name,
	})
	session.Save()

	// 记录到管理员登录日志
	if err := h.Repos.Audit.RecordLogin(admin.ID, ip); err != nil {
		h.Log.Error("记录登录日志失败", zap.Error(err))
	}

	next := c.PostForm("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/admin/"
	}
	c.Redirect(http.StatusFound, next)
}

// Logout 登出，可重复调用
func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionAdminKey)
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login/")
}

// PasswordPage 修改密码页面
func (h *Handler) PasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "password.html", h.RenderData(c, gin.H{
		"Title": "修改密码 - " + h.Config.SiteName,
	}))
}

// Password 修改密码处理，成功后强制重新登录
func (h *Handler) Password(c *gin.Context) {
	var form PasswordForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "新密码至少需要 6 个字符!")
		c.Redirect(http.StatusFound, "/admin/password/")
		return
	}

	adminID := middleware.GetAdminID(c)
	admin, err := h.Repos.Admin.FindByID(adminID)
	if err != nil || admin == nil {
		c.Redirect(http.StatusFound, "/admin/login/")
		return
	}

	if !h.Repos.Admin.CheckPassword(admin, form.OldPassword) {
		h.flash(c, "error", "旧密码错误!")
		c.Redirect(http.StatusFound, "/admin/password/")
		return
	}

	err = h.Repos.Admin.UpdatePassword(adminID, form.NewPassword, h.oplog(c, "修改密码"))
	if err != nil {
		h.Log.Error("修改密码失败", zap.Error(err))
		h.flash(c, "error", "修改密码失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/password/")
		return
	}

	h.flash(c, "ok", "修改密码成功，请重新登录！")
	c.Redirect(http.StatusFound, "/admin/logout/")
}
