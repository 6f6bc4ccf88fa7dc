package repository

import (
	"Chirper/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowUserRow 关注/粉丝列表行：用户投影加上关系建立时间，
// 关系表自身的其他字段不外带
type FollowUserRow struct {
	UserID       uint64
	Name         string
	Account      string
	Avatar       string
	Cover        string
	Introduction string
	FollowedAt   time.Time
}

type FollowshipRepo interface {
	CreateFollowship(ctx context.Context, followship *model.Followship) error
	DeleteFollowship(ctx context.Context, followerId, followingId uint64) (bool, error)
	GetFollowship(ctx context.Context, followerId, followingId uint64) (*model.Followship, error)
	GetFollowerCount(ctx context.Context, userId uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userId uint64) (int64, error)
	ListFollowingsWithUser(ctx context.Context, userId uint64) ([]*FollowUserRow, error)
	ListFollowersWithUser(ctx context.Context, userId uint64) ([]*FollowUserRow, error)
}

type FollowshipRepoImpl struct {
	db *gorm.DB
}

func NewFollowshipRepo(db *gorm.DB) FollowshipRepo {
	return &FollowshipRepoImpl{db: db}
}

// CreateFollowship 复合主键兜底，并发重复插入静默吸收
func (s *FollowshipRepoImpl) CreateFollowship(ctx context.Context, followship *model.Followship) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(followship).Error
}

func (s *FollowshipRepoImpl) DeleteFollowship(ctx context.Context, followerId, followingId uint64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerId, followingId).
		Delete(&model.Followship{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *FollowshipRepoImpl) GetFollowship(ctx context.Context, followerId, followingId uint64) (*model.Followship, error) {
	followship := &model.Followship{}
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerId, followingId).
		First(followship)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return followship, nil
}

func (s *FollowshipRepoImpl) GetFollowerCount(ctx context.Context, userId uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.Followship{}).
		Where("following_id = ?", userId).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *FollowshipRepoImpl) GetFollowingCount(ctx context.Context, userId uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.Followship{}).
		Where("follower_id = ?", userId).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *FollowshipRepoImpl) ListFollowingsWithUser(ctx context.Context, userId uint64) ([]*FollowUserRow, error) {
	rows := make([]*FollowUserRow, 0)
	result := s.db.WithContext(ctx).Model(&model.Followship{}).
		Select("users.id AS user_id, users.name, users.account, users.avatar, users.cover, users.introduction, "+
			"followships.created_at AS followed_at").
		Joins("JOIN users ON users.id = followships.following_id").
		Where("followships.follower_id = ?", userId).
		Order("followships.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (s *FollowshipRepoImpl) ListFollowersWithUser(ctx context.Context, userId uint64) ([]*FollowUserRow, error) {
	rows := make([]*FollowUserRow, 0)
	result := s.db.WithContext(ctx).Model(&model.Followship{}).
		Select("users.id AS user_id, users.name, users.account, users.avatar, users.cover, users.introduction, "+
			"followships.created_at AS followed_at").
		Joins("JOIN users ON users.id = followships.follower_id").
		Where("followships.following_id = ?", userId).
		Order("followships.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
