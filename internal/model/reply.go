package model

import (
	"time"
)

type Reply struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	TweetID   uint64    `gorm:"not null;index:idx_reply_tweet_id" json:"tweetId"`
	UserID    uint64    `gorm:"not null;index:idx_reply_user_id" json:"userId"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Tweet Tweet `gorm:"foreignKey:TweetID;references:ID" json:"-"`
}

func (Reply) TableName() string {
	return "replies"
}
