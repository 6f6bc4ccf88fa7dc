package repository

import (
	"Chirper/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// ReplyFeedRow 用户回复列表行
type ReplyFeedRow struct {
	ID         uint64
	TweetID    uint64
	UserID     uint64
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	AgeSeconds int64
}

type ReplyRepo interface {
	CreateReply(ctx context.Context, reply *model.Reply) error
	ListByUserId(ctx context.Context, userId uint64) ([]*ReplyFeedRow, error)
}

type ReplyRepoImpl struct {
	db *gorm.DB
}

func NewReplyRepo(db *gorm.DB) ReplyRepo {
	return &ReplyRepoImpl{db: db}
}

func (s *ReplyRepoImpl) CreateReply(ctx context.Context, reply *model.Reply) error {
	return s.db.WithContext(ctx).Create(reply).Error
}

func (s *ReplyRepoImpl) ListByUserId(ctx context.Context, userId uint64) ([]*ReplyFeedRow, error) {
	rows := make([]*ReplyFeedRow, 0)
	result := s.db.WithContext(ctx).Model(&model.Reply{}).
		Select("replies.id, replies.tweet_id, replies.user_id, replies.comment, replies.created_at, replies.updated_at, "+
			ageSecondsExpr(s.db, "replies.created_at")+" AS age_seconds").
		Where("replies.user_id = ?", userId).
		Order("replies.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
