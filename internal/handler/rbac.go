package handler

// 角色/权限表存在于库中，但没有任何处理器按它们做访问控制，
// 这里只提供数据维护页面。

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/movieadmin/internal/repository"
	"github.com/user/movieadmin/internal/utils"
	"go.uber.org/zap"
)

// RoleForm 角色表单
type RoleForm struct {
	Name  string `form:"name" binding:"required,max=100"`
	Auths string `form:"auths" binding:"max=600"`
}

// AuthForm 权限表单
type AuthForm struct {
	Name string `form:"name" binding:"required,max=100"`
	URL  string `form:"url" binding:"required,max=255"`
}

// AdminForm 管理员表单
type AdminForm struct {
	Name     string `form:"name" binding:"required,max=100"`
	Password string `form:"password" binding:"required,min=6,max=100"`
	RoleID   uint   `form:"role_id"`
}

// RoleAddPage 添加角色页面
func (h *Handler) RoleAddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "role_add.html", h.RenderData(c, gin.H{
		"Title": "添加角色 - " + h.Config.SiteName,
	}))
}

// RoleAdd 添加角色处理
func (h *Handler) RoleAdd(c *gin.Context) {
	var form RoleForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "请输入角色名称!")
		c.Redirect(http.StatusFound, "/admin/role/add/")
		return
	}

	_, err := h.Repos.Role.CreateRole(form.Name, form.Auths)
	if errors.Is(err, repository.ErrDuplicate) {
		h.flash(c, "error", "角色名称已经存在!")
		c.Redirect(http.StatusFound, "/admin/role/add/")
		return
	}
	if err != nil {
		h.Log.Error("添加角色失败", zap.Error(err))
		h.flash(c, "error", "添加角色失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/role/add/")
		return
	}

	h.flash(c, "ok", "添加角色成功!")
	c.Redirect(http.StatusFound, "/admin/role/add/")
}

// RoleList 角色列表
func (h *Handler) RoleList(c *gin.Context) {
	page := utils.PageFromParam(c)
	roles, pagination, err := h.Repos.Role.ListRoles(page)
	if err != nil {
		h.Log.Error("查询角色列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "role_list.html", h.RenderData(c, gin.H{
		"Title":      "角色列表 - " + h.Config.SiteName,
		"Roles":      roles,
		"Pagination": pagination,
	}))
}

// AuthAddPage 添加权限页面
func (h *Handler) AuthAddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "auth_add.html", h.RenderData(c, gin.H{
		"Title": "添加权限 - " + h.Config.SiteName,
	}))
}

// AuthAdd 添加权限处理
func (h *Handler) AuthAdd(c *gin.Context) {
	var form AuthForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "请输入权限名称和地址!")
		c.Redirect(http.StatusFound, "/admin/auth/add/")
		return
	}

	_, err := h.Repos.Role.CreateAuth(form.Name, form.URL)
	if errors.Is(err, repository.ErrDuplicate) {
		h.flash(c, "error", "权限名称或地址已经存在!")
		c.Redirect(http.StatusFound, "/admin/auth/add/")
		return
	}
	if err != nil {
		h.Log.Error("添加权限失败", zap.Error(err))
		h.flash(c, "error", "添加权限失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/auth/add/")
		return
	}

	h.flash(c, "ok", "添加权限成功!")
	c.Redirect(http.StatusFound, "/admin/auth/add/")
}

// AuthList 权限列表
func (h *Handler) AuthList(c *gin.Context) {
	page := utils.PageFromParam(c)
	auths, pagination, err := h.Repos.Role.ListAuths(page)
	if err != nil {
		h.Log.Error("查询权限列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "auth_list.html", h.RenderData(c, gin.H{
		"Title":      "权限列表 - " + h.Config.SiteName,
		"Auths":      auths,
		"Pagination": pagination,
	}))
}

// AdminAddPage 添加管理员页面
func (h *Handler) AdminAddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_add.html", h.RenderData(c, gin.H{
		"Title": "添加管理员 - " + h.Config.SiteName,
	}))
}

// AdminAdd 添加管理员处理
func (h *Handler) AdminAdd(c *gin.Context) {
	var form AdminForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "请输入账号和密码（至少 6 个字符）!")
		c.Redirect(http.StatusFound, "/admin/admin/add/")
		return
	}

	_, err := h.Repos.Admin.Create(form.Name, form.Password, false, form.RoleID)
	if errors.Is(err, repository.ErrDuplicate) {
		h.flash(c, "error", "账号已经存在!")
		c.Redirect(http.StatusFound, "/admin/admin/add/")
		return
	}
	if err != nil {
		h.Log.Error("添加管理员失败", zap.Error(err))
		h.flash(c, "error", "添加管理员失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/admin/add/")
		return
	}

	h.flash(c, "ok", "添加管理员成功!")
	c.Redirect(http.StatusFound, "/admin/admin/add/")
}

// AdminList 管理员列表
func (h *Handler) AdminList(c *gin.Context) {
	page := utils.PageFromParam(c)
	admins, pagination, err := h.Repos.Admin.List(page)
	if err != nil {
		h.Log.Error("查询管理员列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "admin_list.html", h.RenderData(c, gin.H{
		"Title":      "管理员列表 - " + h.Config.SiteName,
		"Admins":     admins,
		"Pagination": pagination,
	}))
}
