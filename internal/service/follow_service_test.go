package service

import (
	"Chirper/internal/model"
	"Chirper/internal/pkg/consts"
	"Chirper/internal/pkg/redis"
	"Chirper/internal/repository"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFollowService(db *gorm.DB) FollowService {
	return NewFollowService(
		repository.NewUserRepo(db),
		repository.NewFollowshipRepo(db),
	)
}

func TestFollowRules(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "alice")
	bob := seedUser(t, db, "bob", "bob")

	assert.ErrorIs(t, svc.Follow(ctx, alice.ID, alice.ID), ErrFollowSelf)
	assert.ErrorIs(t, svc.Follow(ctx, alice.ID, 99999), ErrNoUserFound)

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	assert.ErrorIs(t, svc.Follow(ctx, alice.ID, bob.ID), ErrFollowExist)

	var count int64
	require.NoError(t, db.Model(&model.Followship{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))
	assert.ErrorIs(t, svc.Unfollow(ctx, alice.ID, bob.ID), ErrFollowshipAbsent)
}

func TestFollowLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "alice")
	bob := seedUser(t, db, "bob", "bob")

	// 关注数已到缓存集合容量时拒绝新增，避免集合被截断后缺失成员
	countKey := consts.UserFollowingCountKey + strconv.FormatUint(alice.ID, 10)
	require.NoError(t, redis.SetWithExpiration(ctx, countKey, MaxFollowingCount, time.Hour))

	assert.ErrorIs(t, svc.Follow(ctx, alice.ID, bob.ID), ErrFollowLimit)

	var count int64
	require.NoError(t, db.Model(&model.Followship{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListFollowings(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	target := seedUser(t, db, "target", "target")
	bob := seedUser(t, db, "bob", "bob")
	carol := seedUser(t, db, "carol", "carol")
	requester := seedUser(t, db, "req", "req")

	now := time.Now()
	seedFollowship(t, db, target.ID, bob.ID, now.Add(-2*time.Hour))
	seedFollowship(t, db, target.ID, carol.ID, now.Add(-time.Hour))
	seedFollowship(t, db, requester.ID, bob.ID, now)

	items, err := svc.ListFollowings(ctx, target.ID, requester.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 最近关注的排前
	assert.Equal(t, carol.ID, items[0].FollowingID)
	assert.Equal(t, bob.ID, items[1].FollowingID)

	assert.False(t, items[0].IsFollowed)
	assert.True(t, items[1].IsFollowed)
	assert.Equal(t, "bob", items[1].Account)

	_, err = svc.ListFollowings(ctx, 99999, requester.ID)
	assert.ErrorIs(t, err, ErrNoUserFound)
}

func TestListFollowers(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	target := seedUser(t, db, "target", "target")
	fan := seedUser(t, db, "fan", "fan")
	requester := seedUser(t, db, "req", "req")

	now := time.Now()
	seedFollowship(t, db, fan.ID, target.ID, now.Add(-time.Hour))
	seedFollowship(t, db, requester.ID, fan.ID, now)

	items, err := svc.ListFollowers(ctx, target.ID, requester.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fan.ID, items[0].FollowerID)
	assert.True(t, items[0].IsFollowed)

	// 无粉丝返回空切片，哨兵对象由 handler 负责
	items, err = svc.ListFollowers(ctx, fan.ID, requester.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFollowCountsCached(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowService(db)
	ctx := context.Background()

	target := seedUser(t, db, "target", "target")
	fan := seedUser(t, db, "fan", "fan")
	fan2 := seedUser(t, db, "fan2", "fan2")

	seedFollowship(t, db, fan.ID, target.ID, time.Now())

	count, err := svc.GetFollowerCount(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 命中缓存时绕过数据库
	seedFollowship(t, db, fan2.ID, target.ID, time.Now())
	count, err = svc.GetFollowerCount(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	mr.FlushAll()
	count, err = svc.GetFollowerCount(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
