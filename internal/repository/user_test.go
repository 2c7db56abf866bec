package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movieadmin/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{
		Name:      name,
		Password:  string(hash),
		Email:     name + "@example.com",
		Phone:     "1380000" + name,
		UUID:      "uuid-" + name,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserDelete_LeavesCommentsAndFavs(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	comments := NewCommentRepository(db)
	favs := NewMovieFavRepository(db)

	user := seedUser(t, db, "alice")
	require.NoError(t, db.Create(&model.Movie{Title: "电影一", URL: "a.mp4", Logo: "a.jpg", CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&model.Comment{Content: "好看", MovieID: 1, UserID: user.ID, CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&model.MovieFav{MovieID: 1, UserID: user.ID, CreatedAt: time.Now()}).Error)

	require.NoError(t, users.Delete(user.ID, testOplog("删除会员 alice")))

	gone, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// 评论和收藏不级联删除，关联的会员名变为空
	rows, _, err := comments.List(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "电影一", rows[0].MovieTitle)
	assert.Empty(t, rows[0].UserName)

	favRows, _, err := favs.List(1)
	require.NoError(t, err)
	require.Len(t, favRows, 1)
	assert.Equal(t, user.ID, favRows[0].UserID)
}

func TestUserCheckPassword(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	user := seedUser(t, db, "bob")
	assert.True(t, users.CheckPassword(user, "secret123"))
	assert.False(t, users.CheckPassword(user, "wrong"))
}

func TestCommentDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	comments := NewCommentRepository(db)

	err := comments.Delete(99, testOplog("删除评论 99"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, oplogCount(t, db))
}
