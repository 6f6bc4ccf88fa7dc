package service

import (
	"Chirper/internal/api/config"
	"Chirper/internal/model"
	"Chirper/internal/pkg/consts"
	"Chirper/internal/pkg/redis"
	"Chirper/internal/pkg/security"
	"context"
	"mime/multipart"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var mr *miniredis.Miniredis

func TestMain(m *testing.M) {
	var err error
	mr, err = miniredis.Run()
	if err != nil {
		panic(err)
	}
	if err = redis.InitRedis(config.RedisConfig{Addr: mr.Addr()}); err != nil {
		panic(err)
	}

	code := m.Run()
	mr.Close()
	os.Exit(code)
}

// newTestDB 每个用例独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Tweet{},
		&model.Reply{},
		&model.Like{},
		&model.Followship{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { mr.FlushAll() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, account, name string) *model.User {
	t.Helper()

	hash, err := security.HashPassword("12345678")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &model.User{
		Account:  account,
		Email:    account + "@example.com",
		Name:     name,
		Password: hash,
		Role:     consts.RoleUser,
		Avatar:   consts.DefaultAvatarURL,
		Cover:    consts.DefaultCoverURL,
	}
	if err = db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedAdmin(t *testing.T, db *gorm.DB, account string) *model.User {
	t.Helper()
	user := seedUser(t, db, account, "root")
	if err := db.Model(user).Update("role", consts.RoleAdmin).Error; err != nil {
		t.Fatalf("promote admin: %v", err)
	}
	user.Role = consts.RoleAdmin
	return user
}

func seedTweet(t *testing.T, db *gorm.DB, userId uint64, description string, createdAt time.Time) *model.Tweet {
	t.Helper()
	tweet := &model.Tweet{
		UserID:      userId,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if err := db.Create(tweet).Error; err != nil {
		t.Fatalf("seed tweet: %v", err)
	}
	return tweet
}

func seedFollowship(t *testing.T, db *gorm.DB, followerId, followingId uint64, createdAt time.Time) {
	t.Helper()
	err := db.Create(&model.Followship{
		FollowerID:  followerId,
		FollowingID: followingId,
		CreatedAt:   createdAt,
	}).Error
	if err != nil {
		t.Fatalf("seed followship: %v", err)
	}
}

// noopUploader 测试用上传桩：无文件返回空串，有文件返回固定地址
type noopUploader struct{}

func (noopUploader) Upload(_ context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	return "http://cdn.test/" + file.Filename, nil
}
