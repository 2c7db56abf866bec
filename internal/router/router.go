package router

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/user/movieadmin/internal/handler"
	"github.com/user/movieadmin/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 登录 ====================
	r.GET("/admin/login/", h.LoginPage)
	r.POST("/admin/login/", h.Login)

	// ==================== 后台（需要登录）====================
	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/", h.Index)
		admin.GET("/logout/", h.Logout)
		admin.GET("/password/", h.PasswordPage)
		admin.POST("/password/", h.Password)

		// 标签管理
		admin.GET("/tag/add/", h.TagAddPage)
		admin.POST("/tag/add/", h.TagAdd)
		admin.GET("/tag/list/:page/", h.TagList)
		admin.GET("/tag/edit/:id", h.TagEditPage)
		admin.POST("/tag/edit/:id", h.TagEdit)
		admin.GET("/tag/del/:id", h.TagDel)

		// 电影管理
		admin.GET("/movie/add/", h.MovieAddPage)
		admin.POST("/movie/add/", h.MovieAdd)
		admin.GET("/movie/list/:page/", h.MovieList)
		admin.GET("/movie/edit/:id", h.MovieEditPage)
		admin.POST("/movie/edit/:id", h.MovieEdit)
		admin.GET("/movie/del/:id", h.MovieDel)

		// 预告管理
		admin.GET("/preview/add/", h.PreviewAddPage)
		admin.POST("/preview/add/", h.PreviewAdd)
		admin.GET("/preview/list/:page/", h.PreviewList)
		admin.GET("/preview/edit/:id/", h.PreviewEditPage)
		admin.POST("/preview/edit/:id/", h.PreviewEdit)
		admin.GET("/preview/del/:id", h.PreviewDel)

		// 会员管理
		admin.GET("/user/list/:page/", h.UserList)
		admin.GET("/user/view/:id/", h.UserView)
		admin.GET("/user/del/:id", h.UserDel)

		// 评论管理
		admin.GET("/comment/list/:page/", h.CommentList)
		admin.GET("/comment/del/:id", h.CommentDel)

		// 收藏管理
		admin.GET("/moviecol/list/:page/", h.MovieColList)
		admin.GET("/moviecol/del/:id", h.MovieColDel)

		// 日志查看
		admin.GET("/oplog/list/:page/", h.OpLogList)
		admin.GET("/adminloginlog/list/:page/", h.AdminLoginLogList)
		admin.GET("/userloginlog/list/:page/", h.UserLoginLogList)

		// 角色与权限（仅数据维护，无访问控制）
		admin.GET("/role/add/", h.RoleAddPage)
		admin.POST("/role/add/", h.RoleAdd)
		admin.GET("/role/list/:page/", h.RoleList)
		admin.GET("/auth/add/", h.AuthAddPage)
		admin.POST("/auth/add/", h.AuthAdd)
		admin.GET("/auth/list/:page/", h.AuthList)
		admin.GET("/admin/add/", h.AdminAddPage)
		admin.POST("/admin/add/", h.AdminAdd)
		admin.GET("/admin/list/:page/", h.AdminList)
	}
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	// 组装模板文件列表
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	// 模板函数
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"fmtTime": func(t interface{}) string {
			type formatter interface {
				Format(string) string
			}
			if v, ok := t.(formatter); ok {
				return v.Format("2006-01-02 15:04:05")
			}
			return ""
		},
	}

	// 注册所有页面模板
	pages := []string{
		"index", "login", "password", "404",
		"tag_add", "tag_list", "tag_edit",
		"movie_add", "movie_list", "movie_edit",
		"preview_add", "preview_list", "preview_edit",
		"user_list", "user_view",
		"comment_list", "moviecol_list",
		"oplog_list", "adminloginlog_list", "userloginlog_list",
		"role_add", "role_list", "auth_add", "auth_list",
		"admin_add", "admin_list",
	}

	for _, page := range pages {
		viewPath := templatesDir + "/pages/" + page + ".html"
		r.AddFromFilesFuncs(page+".html", funcMap, assemble(viewPath)...)
	}

	return r
}
