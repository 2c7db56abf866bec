package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreateAndCheckPassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db)

	admin, err := repo.Create("root", "secret123", true, 0)
	require.NoError(t, err)
	assert.NotZero(t, admin.ID)
	// 入库的是散列，不是明文
	assert.NotEqual(t, "secret123", admin.Password)

	assert.True(t, repo.CheckPassword(admin, "secret123"))
	assert.False(t, repo.CheckPassword(admin, "wrong"))

	// 账号唯一
	_, err = repo.Create("root", "another66", false, 0)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAdminFindByName_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db)

	admin, err := repo.FindByName("nobody")
	require.NoError(t, err)
	assert.Nil(t, admin)
}

func TestAdminUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db)

	admin, err := repo.Create("root", "secret123", true, 0)
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePassword(admin.ID, "newpass66", testOplog("修改密码")))
	assert.EqualValues(t, 1, oplogCount(t, db))

	reloaded, err := repo.FindByID(admin.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, repo.CheckPassword(reloaded, "newpass66"))
	assert.False(t, repo.CheckPassword(reloaded, "secret123"))

	// 不存在的管理员不会写日志
	err = repo.UpdatePassword(999, "whatever9", testOplog("修改密码"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 1, oplogCount(t, db))
}
