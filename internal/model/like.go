package model

import (
	"time"
)

type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_like_pair" json:"userId"`
	TweetID   uint64    `gorm:"not null;uniqueIndex:idx_like_pair;index:idx_like_tweet_id" json:"tweetId"`
	CreatedAt time.Time `json:"createdAt"`

	Tweet Tweet `gorm:"foreignKey:TweetID;references:ID" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}
