package service

import (
	"Chirper/internal/model"
	"Chirper/internal/pkg/consts"
	"Chirper/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeedService(db *gorm.DB) FeedService {
	return NewFeedService(
		repository.NewUserRepo(db),
		repository.NewTweetRepo(db),
		repository.NewReplyRepo(db),
		repository.NewLikeRepo(db),
	)
}

func TestListTweets(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", "author")
	fan := seedUser(t, db, "fan", "fan")
	admin := seedAdmin(t, db, "root")

	now := time.Now()
	older := seedTweet(t, db, author.ID, "older tweet", now.Add(-2*time.Hour))
	newer := seedTweet(t, db, author.ID, "newer tweet", now.Add(-time.Minute))

	require.NoError(t, db.Create(&model.Reply{UserID: fan.ID, TweetID: older.ID, Comment: "nice"}).Error)
	require.NoError(t, db.Create(&model.Reply{UserID: author.ID, TweetID: older.ID, Comment: "thanks"}).Error)
	require.NoError(t, db.Create(&model.Like{UserID: fan.ID, TweetID: older.ID}).Error)

	items, err := svc.ListTweets(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 新帖在前
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, older.ID, items[1].ID)

	assert.Equal(t, int64(0), items[0].ReplyCount)
	assert.Equal(t, int64(2), items[1].ReplyCount)
	assert.Equal(t, int64(1), items[1].LikeCount)

	assert.NotEmpty(t, items[0].DiffCreatedAt)
	_, err = time.Parse(consts.TimeLayout, items[0].CreatedAt)
	assert.NoError(t, err)

	// 空时间线按 NotFound 处理
	_, err = svc.ListTweets(ctx, fan.ID)
	assert.ErrorIs(t, err, ErrNoTweetsFound)

	_, err = svc.ListTweets(ctx, 99999)
	assert.ErrorIs(t, err, ErrNoUserFound)

	_, err = svc.ListTweets(ctx, admin.ID)
	assert.ErrorIs(t, err, ErrNoUserFound)
}

func TestListRepliedTweets(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", "author")
	replier := seedUser(t, db, "replier", "replier")

	now := time.Now()
	tweet := seedTweet(t, db, author.ID, "original", now.Add(-time.Hour))

	first := &model.Reply{UserID: replier.ID, TweetID: tweet.ID, Comment: "first", CreatedAt: now.Add(-30 * time.Minute), UpdatedAt: now.Add(-30 * time.Minute)}
	second := &model.Reply{UserID: replier.ID, TweetID: tweet.ID, Comment: "second", CreatedAt: now.Add(-10 * time.Minute), UpdatedAt: now.Add(-10 * time.Minute)}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	items, err := svc.ListRepliedTweets(ctx, replier.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "second", items[0].Comment)
	assert.Equal(t, "first", items[1].Comment)
	assert.NotEmpty(t, items[0].DiffCreatedAt)

	// 嵌套推文带作者投影，但不带相对时间
	nested := items[0].Tweet
	assert.Equal(t, tweet.ID, nested.ID)
	assert.Equal(t, "original", nested.Description)
	assert.Equal(t, author.ID, nested.User.ID)
	assert.Equal(t, author.Account, nested.User.Account)
	assert.Empty(t, nested.DiffCreatedAt)

	_, err = svc.ListRepliedTweets(ctx, author.ID)
	assert.ErrorIs(t, err, ErrNoRepliesFound)
}

func TestListLikes(t *testing.T) {
	db := newTestDB(t)
	svc := newFeedService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", "author")
	liker := seedUser(t, db, "liker", "liker")

	now := time.Now()
	tweet := seedTweet(t, db, author.ID, "likable", now.Add(-time.Hour))
	like := &model.Like{UserID: liker.ID, TweetID: tweet.ID, CreatedAt: now.Add(-5 * time.Minute)}
	require.NoError(t, db.Create(like).Error)

	items, err := svc.ListLikes(ctx, liker.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, liker.ID, item.UserID)
	assert.Equal(t, tweet.ID, item.TweetID)
	assert.WithinDuration(t, like.CreatedAt, item.CreatedAt, time.Second)

	// 时间派生字段取自被赞推文
	assert.Equal(t, tweet.ID, item.Tweet.ID)
	assert.NotEmpty(t, item.Tweet.DiffCreatedAt)
	assert.Equal(t, author.Account, item.Tweet.User.Account)

	_, err = svc.ListLikes(ctx, author.ID)
	assert.ErrorIs(t, err, ErrNoLikesFound)
}
