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

// UserList 会员列表
func (h *Handler) UserList(c *gin.Context) {
	page := utils.PageFromParam(c)
	users, pagination, err := h.Repos.User.List(page)
	if err != nil {
		h.Log.Error("查询会员列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "user_list.html", h.RenderData(c, gin.H{
		"Title":      "会员列表 - " + h.Config.SiteName,
		"Users":      users,
		"Pagination": pagination,
	}))
}

// UserView 会员详情
func (h *Handler) UserView(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	user, err := h.Repos.User.FindByID(uint(id))
	if err != nil || user == nil {
		h.notFound(c)
		return
	}

	c.HTML(http.StatusOK, "user_view.html", h.RenderData(c, gin.H{
		"Title": "会员详情 - " + h.Config.SiteName,
		"User":  user,
	}))
}

// UserDel 删除会员。评论和收藏不级联删除
func (h *Handler) UserDel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	err = h.Repos.User.Delete(uint(id), h.oplog(c, "删除会员 "+c.Param("id")))
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("删除会员失败", zap.Error(err))
		h.flash(c, "error", "删除会员失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/user/list/1/")
		return
	}

	h.flash(c, "ok", "删除会员成功!")
	c.Redirect(http.StatusFound, "/admin/user/list/1/")
}

// CommentList 评论列表，关联电影和会员
func (h *Handler) CommentList(c *gin.Context) {
	page := utils.PageFromParam(c)
	comments, pagination, err := h.Repos.Comment.List(page)
	if err != nil {
		h.Log.Error("查询评论列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "comment_list.html", h.RenderData(c, gin.H{
		"Title":      "评论列表 - " + h.Config.SiteName,
		"Comments":   comments,
		"Pagination": pagination,
	}))
}

// CommentDel 删除评论
func (h *Handler) CommentDel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	err = h.Repos.Comment.Delete(uint(id), h.oplog(c, "删除评论 "+c.Param("id")))
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("删除评论失败", zap.Error(err))
		h.flash(c, "error", "删除评论失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/comment/list/1/")
		return
	}

	h.flash(c, "ok", "删除评论成功!")
	c.Redirect(http.StatusFound, "/admin/comment/list/1/")
}

// MovieColList 收藏列表，关联电影和会员
func (h *Handler) MovieColList(c *gin.Context) {
	page := utils.PageFromParam(c)
	favs, pagination, err := h.Repos.MovieFav.List(page)
	if err != nil {
		h.Log.Error("查询收藏列表失败", zap.Error(err))
	}

	c.HTML(http.StatusOK, "moviecol_list.html", h.RenderData(c, gin.H{
		"Title":      "收藏列表 - " + h.Config.SiteName,
		"Favs":       favs,
		"Pagination": pagination,
	}))
}

// MovieColDel 删除收藏
func (h *Handler) MovieColDel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.notFound(c)
		return
	}

	err = h.Repos.MovieFav.Delete(uint(id), h.oplog(c, "删除收藏 "+c.Param("id")))
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.Log.Error("删除收藏失败", zap.Error(err))
		h.flash(c, "error", "删除收藏失败，请重试!")
		c.Redirect(http.StatusFound, "/admin/moviecol/list/1/")
		return
	}

	h.flash(c, "ok", "删除收藏成功!")
	c.Redirect(http.StatusFound, "/admin/moviecol/list/1/")
}
