package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movieadmin/internal/model"
)

func TestTagCreate_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	first, err := repo.Create("动作", testOplog("添加标签 动作"))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = repo.Create("动作", testOplog("添加标签 动作"))
	assert.ErrorIs(t, err, ErrDuplicate)

	// 只有成功的那次写了操作日志
	assert.EqualValues(t, 1, oplogCount(t, db))
}

func TestTagUpdate_OwnValueIsNotCollision(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	tag, err := repo.Create("喜剧", testOplog("添加标签 喜剧"))
	require.NoError(t, err)

	// 名称不变的编辑不算冲突
	require.NoError(t, repo.Update(tag.ID, "喜剧", testOplog("修改标签 喜剧")))

	other, err := repo.Create("科幻", testOplog("添加标签 科幻"))
	require.NoError(t, err)

	// 改成别的行已占用的名称才算冲突
	err = repo.Update(other.ID, "喜剧", testOplog("修改标签 喜剧"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestTagUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	err := repo.Update(999, "悬疑", testOplog("修改标签 悬疑"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, oplogCount(t, db))
}

func TestTagDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	_, err := repo.Create("动画", testOplog("添加标签 动画"))
	require.NoError(t, err)

	err = repo.Delete(999, testOplog("删除标签 999"))
	assert.ErrorIs(t, err, ErrNotFound)

	// 什么都没删，也没有新增审计记录
	var count int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.EqualValues(t, 1, oplogCount(t, db))
}

func TestTagList_Pagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&model.Tag{
			Name:      fmt.Sprintf("标签%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	// 第 1 页：最新的 10 条
	tags, p, err := repo.List(1)
	require.NoError(t, err)
	require.Len(t, tags, 10)
	assert.Equal(t, "标签24", tags[0].Name)
	assert.Equal(t, "标签15", tags[9].Name)
	assert.EqualValues(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPage)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)

	// 第 3 页：剩余 5 条
	tags, p, err = repo.List(3)
	require.NoError(t, err)
	require.Len(t, tags, 5)
	assert.Equal(t, "标签04", tags[0].Name)
	assert.False(t, p.HasNextPage)

	// 超出末页返回空页而不是错误
	tags, _, err = repo.List(4)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
