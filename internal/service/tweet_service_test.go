package service

import (
	"Chirper/internal/api/dto"
	"Chirper/internal/model"
	"Chirper/internal/repository"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTweetService(db *gorm.DB) TweetService {
	return NewTweetService(
		repository.NewTweetRepo(db),
		repository.NewReplyRepo(db),
		repository.NewLikeRepo(db),
	)
}

func TestCreateTweet(t *testing.T) {
	db := newTestDB(t)
	svc := newTweetService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", "author")

	_, err := svc.CreateTweet(ctx, author.ID, &dto.CreateTweetDTO{Description: "   "})
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.CreateTweet(ctx, author.ID, &dto.CreateTweetDTO{Description: strings.Repeat("字", 141)})
	assert.ErrorIs(t, err, ErrTweetTooLong)

	// 140 个多字节字符在上限内
	created, err := svc.CreateTweet(ctx, author.ID, &dto.CreateTweetDTO{Description: strings.Repeat("字", 140)})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, author.ID, created.UserID)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestCreateReply(t *testing.T) {
	db := newTestDB(t)
	svc := newTweetService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", "author")
	replier := seedUser(t, db, "replier", "replier")
	tweet := seedTweet(t, db, author.ID, "hello", time.Now())

	assert.ErrorIs(t, svc.CreateReply(ctx, replier.ID, tweet.ID, &dto.CreateReplyDTO{Comment: "  "}), ErrCommentRequired)
	assert.ErrorIs(t, svc.CreateReply(ctx, replier.ID, 99999, &dto.CreateReplyDTO{Comment: "hi"}), ErrTweetNotFound)

	require.NoError(t, svc.CreateReply(ctx, replier.ID, tweet.ID, &dto.CreateReplyDTO{Comment: "hi"}))

	var count int64
	require.NoError(t, db.Model(&model.Reply{}).Where("tweet_id = ?", tweet.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLikeUnlike(t *testing.T) {
	db := newTestDB(t)
	svc := newTweetService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author", "author")
	liker := seedUser(t, db, "liker", "liker")
	tweet := seedTweet(t, db, author.ID, "hello", time.Now())

	assert.ErrorIs(t, svc.Like(ctx, liker.ID, 99999), ErrTweetNotFound)

	require.NoError(t, svc.Like(ctx, liker.ID, tweet.ID))
	assert.ErrorIs(t, svc.Like(ctx, liker.ID, tweet.ID), ErrLikeExist)

	assert.ErrorIs(t, svc.Unlike(ctx, liker.ID, 99999), ErrTweetNotFound)
	require.NoError(t, svc.Unlike(ctx, liker.ID, tweet.ID))
	assert.ErrorIs(t, svc.Unlike(ctx, liker.ID, tweet.ID), ErrLikeAbsent)
}
