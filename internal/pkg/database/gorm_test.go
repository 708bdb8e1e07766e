package database

import (
	"Blogverse/internal/api/config"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

// 未设置任何期望，任何建表查询都会让 openGormDB 失败
func TestOpenGormDB_DoesNotMigrate(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := openGormDB(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), config.DBConfig{MaxIdle: 2, MaxOpen: 7, MaxLifetime: 1})
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 7, sqlDB.Stats().MaxOpenConnections)
}
