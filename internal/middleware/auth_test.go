package middleware

import (
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movieadmin/internal/model"
)

func init() {
	gob.Register(model.SessionAdmin{})
}

// newAuthRouter /session 路由用于在测试里种下登录态
func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(sessions.Sessions("adminsession", cookie.NewStore([]byte("test-secret"))))

	r.GET("/session", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(SessionAdminKey, model.SessionAdmin{ID: 7, Name: "root"})
		session.Save()
		c.Status(http.StatusOK)
	})

	admin := r.Group("/admin", AdminAuth())
	admin.GET("/tag/list/:page/", func(c *gin.Context) {
		c.String(http.StatusOK, "%d:%s", GetAdminID(c), GetAdminName(c))
	})

	return r
}

func TestAdminAuth_RedirectsWithNext(t *testing.T) {
	r := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/tag/list/1/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login/?next=%2Fadmin%2Ftag%2Flist%2F1%2F", w.Header().Get("Location"))
}

func TestAdminAuth_PassesWithSession(t *testing.T) {
	r := newAuthRouter()

	// 先种下登录态
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/tag/list/1/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7:root", w.Body.String())
}
