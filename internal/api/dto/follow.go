package dto

// FollowingDTO 关注列表项。关注关系本身不外露，仅以 isFollowed 标记
// 请求者与该用户之间是否已存在关注
type FollowingDTO struct {
	FollowingID  uint64 `json:"followingId"`
	Name         string `json:"name"`
	Account      string `json:"account"`
	Avatar       string `json:"avatar"`
	Cover        string `json:"cover"`
	Introduction string `json:"introduction"`
	IsFollowed   bool   `json:"isFollowed"`
}

// FollowerDTO 粉丝列表项
type FollowerDTO struct {
	FollowerID   uint64 `json:"followerId"`
	Name         string `json:"name"`
	Account      string `json:"account"`
	Avatar       string `json:"avatar"`
	Cover        string `json:"cover"`
	Introduction string `json:"introduction"`
	IsFollowed   bool   `json:"isFollowed"`
}

// EmptyListDTO 空结果哨兵对象
type EmptyListDTO struct {
	IsEmpty bool `json:"isEmpty"`
}
