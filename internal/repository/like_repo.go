package repository

import (
	"Chirper/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userId, tweetId uint64) error
	GetLike(ctx context.Context, userId, tweetId uint64) (*model.Like, error)
	ListByUserId(ctx context.Context, userId uint64) ([]*model.Like, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *LikeRepoImpl) DeleteLike(ctx context.Context, userId, tweetId uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userId, tweetId).
		Delete(&model.Like{}).Error
}

func (s *LikeRepoImpl) GetLike(ctx context.Context, userId, tweetId uint64) (*model.Like, error) {
	like := &model.Like{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userId, tweetId).
		First(like)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return like, nil
}

func (s *LikeRepoImpl) ListByUserId(ctx context.Context, userId uint64) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&likes)
	if result.Error != nil {
		return nil, result.Error
	}
	return likes, nil
}
