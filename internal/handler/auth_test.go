package handler

import (
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movieadmin/internal/config"
	"github.com/user/movieadmin/internal/model"
	"github.com/user/movieadmin/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gob.Register(model.SessionAdmin{})
	gob.Register(model.Flash{})
}

// newTestEnv 内存数据库 + 最小路由，只挂登录相关的处理器
func newTestEnv(t *testing.T) (*Handler, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	cfg := &config.Config{
		SiteName:  "电影管理后台",
		UploadDir: t.TempDir(),
	}
	h := NewHandler(repository.NewRepositories(db), cfg, zap.NewNop())

	r := gin.New()
	r.Use(sessions.Sessions("adminsession", cookie.NewStore([]byte("test-secret"))))
	r.POST("/admin/login/", h.Login)
	r.GET("/admin/logout/", h.Logout)

	return h, r
}

func postLogin(r *gin.Engine, remoteAddr string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func adminLogCount(t *testing.T, h *Handler) int64 {
	t.Helper()
	var count int64
	require.NoError(t, h.Repos.DB.Model(&model.AdminLog{}).Count(&count).Error)
	return count
}

func TestLogin_WrongPassword(t *testing.T) {
	h, r := newTestEnv(t)

	_, err := h.Repos.Admin.Create("root", "secret123", true, 0)
	require.NoError(t, err)

	w := postLogin(r, "1.2.3.4:1234", url.Values{
		"account":  {"root"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login/", w.Header().Get("Location"))
	// 失败的登录不进登录日志
	assert.EqualValues(t, 0, adminLogCount(t, h))
}

func TestLogin_Success(t *testing.T) {
	h, r := newTestEnv(t)

	admin, err := h.Repos.Admin.Create("root", "secret123", true, 0)
	require.NoError(t, err)

	w := postLogin(r, "1.2.3.4:1234", url.Values{
		"account":  {"root"},
		"password": {"secret123"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/", w.Header().Get("Location"))
	require.NotEmpty(t, w.Result().Cookies())

	// 登录成功写入登录日志，带来源 IP
	var logs []model.AdminLog
	require.NoError(t, h.Repos.DB.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, admin.ID, logs[0].AdminID)
	assert.Equal(t, "1.2.3.4", logs[0].IP)
}

func TestLogin_NextRedirect(t *testing.T) {
	h, r := newTestEnv(t)

	_, err := h.Repos.Admin.Create("root", "secret123", true, 0)
	require.NoError(t, err)

	w := postLogin(r, "1.2.3.4:1234", url.Values{
		"account":  {"root"},
		"password": {"secret123"},
		"next":     {"/admin/movie/list/2/"},
	})
	assert.Equal(t, "/admin/movie/list/2/", w.Header().Get("Location"))

	// 绝对地址不跟随，防止开放重定向
	w = postLogin(r, "1.2.3.4:1234", url.Values{
		"account":  {"root"},
		"password": {"secret123"},
		"next":     {"http://evil.example.com/"},
	})
	assert.Equal(t, "/admin/", w.Header().Get("Location"))
}

func TestLogin_ThrottleAfterRepeatedFailures(t *testing.T) {
	h, r := newTestEnv(t)

	_, err := h.Repos.Admin.Create("root", "secret123", true, 0)
	require.NoError(t, err)

	for i := 0; i < maxLoginFailures; i++ {
		postLogin(r, "9.9.9.9:1234", url.Values{
			"account":  {"root"},
			"password": {"wrong"},
		})
	}

	// 超过失败上限后，正确的密码也被拒绝
	w := postLogin(r, "9.9.9.9:1234", url.Values{
		"account":  {"root"},
		"password": {"secret123"},
	})
	assert.Equal(t, "/admin/login/", w.Header().Get("Location"))
	assert.EqualValues(t, 0, adminLogCount(t, h))

	// 其他来源不受影响
	w = postLogin(r, "8.8.8.8:1234", url.Values{
		"account":  {"root"},
		"password": {"secret123"},
	})
	assert.Equal(t, "/admin/", w.Header().Get("Location"))
	assert.EqualValues(t, 1, adminLogCount(t, h))
}

func TestLoginThrottle_WindowAndReset(t *testing.T) {
	throttle := newLoginThrottle()

	for i := 0; i < maxLoginFailures-1; i++ {
		throttle.recordFailure("1.1.1.1")
	}
	assert.False(t, throttle.blocked("1.1.1.1"))

	throttle.recordFailure("1.1.1.1")
	assert.True(t, throttle.blocked("1.1.1.1"))

	throttle.reset("1.1.1.1")
	assert.False(t, throttle.blocked("1.1.1.1"))

	// 窗口外的旧失败记录不计入
	stale := make([]time.Time, maxLoginFailures)
	for i := range stale {
		stale[i] = time.Now().Add(-loginFailureWindow - time.Minute)
	}
	throttle.failures.Add("2.2.2.2", stale)
	assert.False(t, throttle.blocked("2.2.2.2"))
}
