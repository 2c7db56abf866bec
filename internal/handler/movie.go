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

const tagCacheKey = "tags:all"

// MovieForm 电影表单
type MovieForm struct {
	Title       string `form:"title" binding:"required,max=255"`
	Info        string `form:"info" binding:"required"`
	Star        int    `form:"star" binding:"required,min=1,max=5"`
	TagID       uint   `form:"tag_id" binding:"required"`
	Area        string `form:"area" binding:"required,max=255"`
	Length      string `form:"length" binding:"required,max=100"`
	ReleaseTime string `form:"release_time" binding:"required,max=100"`
}

// allTags 电影表单下拉用的标签列表，带缓存
func (h *Handler) allTags() []model.Tag {
	if cached, ok := utils.CacheGet(tagCacheKey); ok {
		if tags, ok := cached.([]model.Tag); ok {
			return tags
		}
	}

	tags, err := h.Repos.Tag.ListAll()
	if err != nil {
		h.Log.Error("查询标签失败", zap.Error(err))
		return nil
	}
	utils.CacheSet(tagCacheKey, tags, 5*time.Minute)
	return tags
}

// MovieAddPage 添加电影页面
func (h *Handler) MovieAddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "movie_add.html", h.RenderData(c, gin.H{
		"Title": "添加电影 - " + h.Config.SiteName,
		"Tags":  h.allTags(),
	}))
}

// MovieAdd 添加电影处理，视频和封面必传
func (h *Handler) MovieAdd(c *gin.Context) {
	var form MovieForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "表单填写不完整!")
		c.Redirect(http.StatusFound, "/admin/movie/add/")
		return
	}

	urlFile, err := c.FormFile("url")
	if err != nil {
		h.flash(c, "error", "请上传视频文件!")
		c.Redirect(http.StatusFound, "/admin/movie/add/")
		return
	}
	logoFile, err := c.FormFile("logo")
	if err != nil {
		h.flash(c, "error", "请上传封面文件!")
		c.Redirect(http.StatusFound, "/admin/movie/add/")
		return
	}

	url, err := h.Uploader.Save(urlFile)
	if err != nil {
		h.Log.Error("保存视频文件失败", zap.Error(err))
		h.flash(c, "error", "上传视频失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/movie/add/")
		return
	}
	logo, err := h.Uploader.Save(logoFile)
	if err != nil {
		h.Log.Error("保存封面文件失败", zap.Error(err))
		h.flash(c, "error", "上传封面失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/movie/add/")
		return
	}

	movie := &model.Movie{
		Title:       form.Title,
		URL:         url,
		Info:        form.Info,
		Logo:        logo,
		Star:        form.Star,
		PlayNum:     0,
		CommentNum:  0,
		TagID:       form.TagID,
		Area:        form.Area,
		Length:      form.Length,
		ReleaseTime: form.ReleaseTime,
		CreatedAt:   time.Now(),
	}

	err = h.Repos.Movie.Create(movie, h.oplog(c, "添加电影 "+form.Title))
	if errors.Is(err, repository.ErrDuplicate) {
		h.flash(c, "error", "片名已经存在!")
		c.Redirect(http.StatusFound, "/admin/movie/add/")
		return
	}
	if err != nil {
		h.Log.Error("添加电影失败", zap.Error(err))
		h.flash(c, "error", "添加电影失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/movie/add/")
		return
	}

	h.flash(c, "ok", "添加电影成功!")
	c.Redirect(http.StatusFound, "/admin/movie/add/")
}

// MovieList 电影列表，关联标签名
func (h *Handler) MovieList(c *gin.Context) {
	page := utils.PageFromParam(c)
	movies, pagination, err := h.Repos.Movie.List(page)
	if err != nil {
		h.Log.Error("查询电影列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "movie_list.html", h.RenderData(c, gin.H{
		"Title":      "电影列表 - " + h.Config.SiteName,
		"Movies":     movies,
		"Pagination": pagination,
	}))
}

// MovieEditPage 编辑电影页面
func (h *Handler) MovieEditPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	movie, err := h.Repos.Movie.FindByID(uint(id))
	if err != nil || movie == nil {
		h.notFound(c)
		return
	}

	c.HTML(http.StatusOK, "movie_edit.html", h.RenderData(c, gin.H{
		"Title": "编辑电影 - " + h.Config.SiteName,
		"Movie": movie,
		"Tags":  h.allTags(),
	}))
}

// MovieEdit 编辑电影处理。未上传新文件时保留旧文件，
// 上传了新文件则替换并删除旧的存储文件。
func (h *Handler) MovieEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	movie, err := h.Repos.Movie.FindByID(uint(id))
	if err != nil || movie == nil {
		h.notFound(c)
		return
	}

	var form MovieForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, "error", "表单填写不完整!")
		c.Redirect(http.StatusFound, "/admin/movie/edit/"+c.Param("id"))
		return
	}

	oldURL, oldLogo := movie.URL, movie.Logo

	if urlFile, err := c.FormFile("url"); err == nil && urlFile.Filename != "" {
		url, err := h.Uploader.Save(urlFile)
		if err != nil {
			h.Log.Error("保存视频文件失败", zap.Error(err))
			h.flash(c, "error", "上传视频失败，请重试!")
			c.Redirect(http.StatusFound, "/admin/movie/edit/"+c.Param("id"))
			return
		}
		movie.URL = url
	}

	if logoFile, err := c.FormFile("logo"); err == nil && logoFile.Filename != "" {
		logo, err := h.Uploader.Save(logoFile)
		if err != nil {
			h.Log.Error("保存封面文件失败", zap.Error(err))
			h.flash(c, "error", "上传封面失败，请重试!")
			c.Redirect(http.StatusFound, "/admin/movie/edit/"+c.Param("id"))
			return
		}
		movie.Logo = logo
	}

	movie.Title = form.Title
	movie.Info = form.Info
	movie.Star = form.Star
	movie.TagID = form.TagID
	movie.Area = form.Area
	movie.Length = form.Length
	movie.ReleaseTime = form.ReleaseTime

	err = h.Repos.Movie.Update(movie, h.oplog(c, "修改电影 "+form.Title))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.notFound(c)
		return
	case errors.Is(err, repository.ErrDuplicate):
		h.flash(c, "error", "片名已经存在!")
		c.Redirect(http.StatusFound, "/admin/movie/edit/"+c.Param("id"))
		return
	case err != nil:
		h.Log.Error("修改电影失败", zap.Error(err))
		h.flash(c, "error", "修改电影失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/movie/edit/"+c.Param("id"))
		return
	}

	// 提交成功后再清理被替换的旧文件
	if movie.URL != oldURL {
		h.Uploader.Remove(oldURL)
	}
	if movie.Logo != oldLogo {
		h.Uploader.Remove(oldLogo)
	}

	h.flash(c, "ok", "修改电影成功!")
	c.Redirect(http.StatusFound, "/admin/movie/edit/"+c.Param("id"))
}

// MovieDel 删除电影
func (h *Handler) MovieDel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	err = h.Repos.Movie.Delete(uint(id), h.oplog(c, "删除电影 "+c.Param("id")))
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("删除电影失败", zap.Error(err))
		h.flash(c, "error", "删除电影失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/movie/list/1/")
		return
	}

	h.flash(c, "ok", "删除电影成功!")
	c.Redirect(http.StatusFound, "/admin/movie/list/1/")
}
