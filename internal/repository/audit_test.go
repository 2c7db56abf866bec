package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRecordLoginAndList(t *testing.T) {
	db := newTestDB(t)
	admins := NewAdminRepository(db)
	audit := NewAuditRepository(db)

	admin, err := admins.Create("root", "secret123", true, 0)
	require.NoError(t, err)

	require.NoError(t, audit.RecordLogin(admin.ID, "1.2.3.4"))
	require.NoError(t, audit.RecordLogin(admin.ID, "5.6.7.8"))

	logs, p, err := audit.ListAdminLogins(1)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.EqualValues(t, 2, p.Total)

	// 关联出管理员账号
	for _, l := range logs {
		assert.Equal(t, "root", l.AdminName)
		assert.Equal(t, admin.ID, l.AdminID)
	}
}

func TestAuditListOperations_Pagination(t *testing.T) {
	db := newTestDB(t)
	admins := NewAdminRepository(db)
	tags := NewTagRepository(db)
	audit := NewAuditRepository(db)

	admin, err := admins.Create("root", "secret123", true, 0)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("标签%02d", i)
		oplog := testOplog("添加标签 " + name)
		oplog.AdminID = admin.ID
		_, err := tags.Create(name, oplog)
		require.NoError(t, err)
	}

	logs, p, err := audit.ListOperations(1)
	require.NoError(t, err)
	require.Len(t, logs, 10)
	assert.EqualValues(t, 12, p.Total)
	assert.Equal(t, 2, p.TotalPage)
	assert.Equal(t, "root", logs[0].AdminName)

	logs, _, err = audit.ListOperations(2)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	count, err := audit.CountOperationsByAdmin(admin.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 12, count)
}
