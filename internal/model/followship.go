package model

import "time"

// Followship 关注关系（follower 关注 following）
type Followship struct {
	FollowerID  uint64    `gorm:"primaryKey" json:"followerId"`
	FollowingID uint64    `gorm:"primaryKey;index:idx_following_id" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Followship) TableName() string {
	return "followships"
}
