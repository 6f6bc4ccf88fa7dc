package repository

import (
	"Chirper/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// TweetFeedRow 用户推文列表行，计数与秒龄由数据库在查询时算出
type TweetFeedRow struct {
	ID          uint64
	UserID      uint64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ReplyCount  int64
	LikeCount   int64
	AgeSeconds  int64
}

// TweetWithAuthorRow 带作者投影的推文行，供回复/点赞列表拼装嵌套推文
type TweetWithAuthorRow struct {
	ID            uint64
	UserID        uint64
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AgeSeconds    int64
	AuthorName    string
	AuthorAccount string
	AuthorAvatar  string
}

type TweetRepo interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	GetTweetById(ctx context.Context, id uint64) (*model.Tweet, error)
	CountByUserId(ctx context.Context, userId uint64) (int64, error)
	ListByUserId(ctx context.Context, userId uint64) ([]*TweetFeedRow, error)
	ListWithAuthorByIds(ctx context.Context, ids []uint64) ([]*TweetWithAuthorRow, error)
}

type TweetRepoImpl struct {
	db *gorm.DB
}

func NewTweetRepo(db *gorm.DB) TweetRepo {
	return &TweetRepoImpl{db: db}
}

func (s *TweetRepoImpl) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return s.db.WithContext(ctx).Create(tweet).Error
}

func (s *TweetRepoImpl) GetTweetById(ctx context.Context, id uint64) (*model.Tweet, error) {
	tweet := &model.Tweet{}
	result := s.db.WithContext(ctx).First(tweet, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return tweet, nil
}

func (s *TweetRepoImpl) CountByUserId(ctx context.Context, userId uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("user_id = ?", userId).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ListByUserId 回复数与点赞数用相关子查询即时统计，不落冗余计数列
func (s *TweetRepoImpl) ListByUserId(ctx context.Context, userId uint64) ([]*TweetFeedRow, error) {
	rows := make([]*TweetFeedRow, 0)
	result := s.db.WithContext(ctx).Model(&model.Tweet{}).
		Select("tweets.id, tweets.user_id, tweets.description, tweets.created_at, tweets.updated_at, "+
			"(SELECT COUNT(*) FROM replies WHERE replies.tweet_id = tweets.id) AS reply_count, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.tweet_id = tweets.id) AS like_count, "+
			ageSecondsExpr(s.db, "tweets.created_at")+" AS age_seconds").
		Where("tweets.user_id = ?", userId).
		Order("tweets.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (s *TweetRepoImpl) ListWithAuthorByIds(ctx context.Context, ids []uint64) ([]*TweetWithAuthorRow, error) {
	rows := make([]*TweetWithAuthorRow, 0)
	if len(ids) == 0 {
		return rows, nil
	}
	result := s.db.WithContext(ctx).Model(&model.Tweet{}).
		Select("tweets.id, tweets.user_id, tweets.description, tweets.created_at, tweets.updated_at, "+
			ageSecondsExpr(s.db, "tweets.created_at")+" AS age_seconds, "+
			"users.name AS author_name, users.account AS author_account, users.avatar AS author_avatar").
		Joins("JOIN users ON users.id = tweets.user_id").
		Where("tweets.id IN ?", ids).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
