package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/movieadmin/internal/repository"
	"github.com/user/movieadmin/internal/utils"
	"go.uber.org/zap"
)

// TagForm 标签表单
type TagForm struct {
	Name string `form:"name" binding:"required,max=100"`
}

// TagAddPage 添加标签页面
func (h *Handler) TagAddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "tag_add.html", h.RenderData(c, gin.H{
		"Title": "添加标签 - " + h.Config.SiteName,
	}))
}

// TagAdd 添加标签处理
func (h *Handler) TagAdd(c *gin.Context) {
	var form TagForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "请输入标签名称!")
		c.Redirect(http.StatusFound, "/admin/tag/add/")
		return
	}

	_, err := h.Repos.Tag.Create(form.Name, h.oplog(c, "添加标签 "+form.Name))
	if errors.Is(err, repository.ErrDuplicate) {
		h.flash(c, "error", "标签名称已经存在!")
		c.Redirect(http.StatusFound, "/admin/tag/add/")
		return
	}
	if err != nil {
		h.Log.Error("添加标签失败", zap.Error(err))
		h.flash(c, "error", "添加标签失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/tag/add/")
		return
	}

	// 标签变更后失效下拉缓存
	utils.CacheDelete(tagCacheKey)

	h.flash(c, "ok", "添加标签成功!")
	c.Redirect(http.StatusFound, "/admin/tag/add/")
}

// TagList 标签列表
func (h *Handler) TagList(c *gin.Context) {
	page := utils.PageFromParam(c)
	tags, pagination, err := h.Repos.Tag.List(page)
	if err != nil {
		h.Log.Error("查询标签列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "tag_list.html", h.RenderData(c, gin.H{
		"Title":      "标签列表 - " + h.Config.SiteName,
		"Tags":       tags,
		"Pagination": pagination,
	}))
}

// TagEditPage 编辑标签页面
func (h *Handler) TagEditPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	tag, err := h.Repos.Tag.FindByID(uint(id))
	if err != nil || tag == nil {
		h.notFound(c)
		return
	}

	c.HTML(http.StatusOK, "tag_edit.html", h.RenderData(c, gin.H{
		"Title": "编辑标签 - " + h.Config.SiteName,
		"Tag":   tag,
	}))
}

// TagEdit 编辑标签处理
func (h *Handler) TagEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	var form TagForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "请输入标签名称!")
		c.Redirect(http.StatusFound, "/admin/tag/edit/"+c.Param("id"))
		return
	}

	err = h.Repos.Tag.Update(uint(id), form.Name, h.oplog(c, "修改标签 "+form.Name))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.notFound(c)
		return
	case errors.Is(err, repository.ErrDuplicate):
		h.flash(c, "error", "名称已经存在!")
		c.Redirect(http.StatusFound, "/admin/tag/edit/"+c.Param("id"))
		return
	case err != nil:
		h.Log.Error("修改标签失败", zap.Error(err))
		h.flash(c, "error", "修改标签失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/tag/edit/"+c.Param("id"))
		return
	}

	utils.CacheDelete(tagCacheKey)

	h.flash(c, "ok", "修改标签成功!")
	c.Redirect(http.StatusFound, "/admin/tag/edit/"+c.Param("id"))
}

// TagDel 删除标签。所属电影不级联删除，tag_id 悬空
func (h *Handler) TagDel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	err = h.Repos.Tag.Delete(uint(id), h.oplog(c, "删除标签 "+c.Param("id")))
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("删除标签失败", zap.Error(err))
		h.flash(c, "error", "删除标签失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/tag/list/1/")
		return
	}

	utils.CacheDelete(tagCacheKey)

	h.flash(c, "ok", "删除标签成功!")
	c.Redirect(http.StatusFound, "/admin/tag/list/1/")
}
