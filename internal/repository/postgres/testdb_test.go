package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/iq-api/internal/domain/entity"
)

// newTestDB поднимает чистую in-memory SQLite базу со схемой приложения.
// Внешние ключи SQLite по умолчанию не проверяет, поэтому каскады
// здесь проверяются именно на уровне репозиториев.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// одно соединение = одна in-memory база
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Question{},
		&entity.Score{},
		&entity.CustomQuiz{},
		&entity.CustomQuizQuestion{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username, Password: "not-a-real-hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
