package dto

import "time"

// UserBriefDTO 推文作者投影
type UserBriefDTO struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Account string `json:"account"`
	Avatar  string `json:"avatar"`
}

// TweetFeedItemDTO 用户推文列表项，计数与相对时间均为读取时派生
type TweetFeedItemDTO struct {
	ID            uint64 `json:"id"`
	UserID        uint64 `json:"userId"`
	Description   string `json:"description"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	DiffCreatedAt string `json:"diffCreatedAt"`
	ReplyCount    int64  `json:"replyCount"`
	LikeCount     int64  `json:"likeCount"`
}

// TweetBriefDTO 嵌套在回复/点赞列表里的推文
type TweetBriefDTO struct {
	ID            uint64       `json:"id"`
	UserID        uint64       `json:"userId"`
	Description   string       `json:"description"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
	DiffCreatedAt string       `json:"diffCreatedAt,omitempty"`
	User          UserBriefDTO `json:"user"`
}

// ReplyFeedItemDTO 用户回复列表项
type ReplyFeedItemDTO struct {
	ID            uint64        `json:"id"`
	Comment       string        `json:"comment"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
	DiffCreatedAt string        `json:"diffCreatedAt"`
	Tweet         TweetBriefDTO `json:"tweet"`
}

// LikeFeedItemDTO 用户点赞列表项，时间派生字段取自嵌套推文
type LikeFeedItemDTO struct {
	ID        uint64        `json:"id"`
	UserID    uint64        `json:"userId"`
	TweetID   uint64        `json:"tweetId"`
	CreatedAt time.Time     `json:"likedAt"`
	Tweet     TweetBriefDTO `json:"tweet"`
}

// CreateTweetDTO 发推
type CreateTweetDTO struct {
	Description string `json:"description" binding:"required" validate:"required,max=140"`
}

// CreateReplyDTO 回复推文
type CreateReplyDTO struct {
	Comment string `json:"comment" binding:"required" validate:"required"`
}
