package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/repository"
	"github.com/user/movieadmin/internal/utils"
	"go.uber.org/zap"
)

// PreviewForm 预告表单
type PreviewForm struct {
	Title string `form:"title" binding:"required,max=255"`
}

// PreviewAddPage 添加预告页面
func (h *Handler) PreviewAddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "preview_add.html", h.RenderData(c, gin.H{
		"Title": "添加预告 - " + h.Config.SiteName,
	}))
}

// PreviewAdd 添加预告处理，海报必传
func (h *Handler) PreviewAdd(c *gin.Context) {
	var form PreviewForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "请输入预告标题!")
		c.Redirect(http.StatusFound, "/admin/preview/add/")
		return
	}

	logoFile, err := c.FormFile("logo")
	if err != nil {
		h.flash(c, "error", "请上传海报文件!")
		c.Redirect(http.StatusFound, "/admin/preview/add/")
		return
	}

	logo, err := h.Uploader.Save(logoFile)
	if err != nil {
		h.Log.Error("保存海报文件失败", zap.Error(err))
		h.flash(c, "error", "上传海报失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/preview/add/")
		return
	}

	preview := &model.Preview{
		Title:     form.Title,
		Logo:      logo,
		CreatedAt: time.Now(),
	}

	err = h.Repos.Preview.Create(preview, h.oplog(c, "添加预告 "+form.Title))
	if errors.Is(err, repository.ErrDuplicate) {
		h.flash(c, "error", "预告标题已经存在!")
		c.Redirect(http.StatusFound, "/admin/preview/add/")
		return
	}
	if err != nil {
		h.Log.Error("添加预告失败", zap.Error(err))
		h.flash(c, "error", "添加预告失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/preview/add/")
		return
	}

	h.flash(c, "ok", "增加预告成功!")
	c.Redirect(http.StatusFound, "/admin/preview/add/")
}

// PreviewList 预告列表
func (h *Handler) PreviewList(c *gin.Context) {
	page := utils.PageFromParam(c)
	previews, pagination, err := h.Repos.Preview.List(page)
	if err != nil {
		h.Log.Error("查询预告列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "preview_list.html", h.RenderData(c, gin.H{
		"Title":      "预告列表 - " + h.Config.SiteName,
		"Previews":   previews,
		"Pagination": pagination,
	}))
}

// PreviewEditPage 编辑预告页面
func (h *Handler) PreviewEditPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	preview, err := h.Repos.Preview.FindByID(uint(id))
	if err != nil || preview == nil {
		h.notFound(c)
		return
	}

	c.HTML(http.StatusOK, "preview_edit.html", h.RenderData(c, gin.H{
		"Title":   "编辑预告 - " + h.Config.SiteName,
		"Preview": preview,
	}))
}

// PreviewEdit 编辑预告处理，新海报替换时删除旧文件
func (h *Handler) PreviewEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	preview, err := h.Repos.Preview.FindByID(uint(id))
	if err != nil || preview == nil {
		h.notFound(c)
		return
	}

	var form PreviewForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "请输入预告标题!")
		c.Redirect(http.StatusFound, "/admin/preview/edit/"+c.Param("id")+"/")
		return
	}

	oldLogo := preview.Logo

	if logoFile, err := c.FormFile("logo"); err == nil && logoFile.Filename != "" {
		logo, err := h.Uploader.Save(logoFile)
		if err != nil {
			h.Log.Error("保存海报文件失败", zap.Error(err))
			h.flash(c, "error", "上传海报失败，请重试!")
			c.Redirect(http.StatusFound, "/admin/preview/edit/"+c.Param("id")+"/")
			return
		}
		preview.Logo = logo
	}

	preview.Title = form.Title

	err = h.Repos.Preview.Update(preview, h.oplog(c, "修改预告 "+form.Title))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.notFound(c)
		return
	case errors.Is(err, repository.ErrDuplicate):
		h.flash(c, "error", "预告标题已经存在!")
		c.Redirect(http.StatusFound, "/admin/preview/edit/"+c.Param("id")+"/")
		return
	case err != nil:
		h.Log.Error("修改预告失败", zap.Error(err))
		h.flash(c, "error", "修改预告失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/preview/edit/"+c.Param("id")+"/")
		return
	}

	if preview.Logo != oldLogo {
		h.Uploader.Remove(oldLogo)
	}

	h.flash(c, "ok", "修改预告成功!")
	c.Redirect(http.StatusFound, "/admin/preview/edit/"+c.Param("id")+"/")
}

// PreviewDel 删除预告
func (h *Handler) PreviewDel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	err = h.Repos.Preview.Delete(uint(id), h.oplog(c, "删除预告 "+c.Param("id")))
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("删除预告失败", zap.Error(err))
		h.flash(c, "error", "删除预告失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/preview/list/1/")
		return
	}

	h.flash(c, "ok", "删除预告成功!")
	c.Redirect(http.StatusFound, "/admin/preview/list/1/")
}
