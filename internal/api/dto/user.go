package dto

import "time"

// SignUpDTO 注册
// 校验规则沿用站点既有的中文错误文案，由 service 层逐条检查
type SignUpDTO struct {
	Name          string `json:"name"`
	Account       string `json:"account"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	CheckPassword string `json:"checkPassword"`
}

// SignInDTO 登录凭证
type SignInDTO struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// UserDTO 用户公开资料（永不包含密码）
type UserDTO struct {
	ID           uint64    `json:"id"`
	Account      string    `json:"account"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar"`
	Cover        string    `json:"cover"`
	Introduction string    `json:"introduction"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfileDTO 用户主页资料，附带聚合数
type ProfileDTO struct {
	UserDTO
	Follower    int64 `json:"follower"`
	Following   int64 `json:"following"`
	TweetAmount int64 `json:"tweetAmount"`
}

// SignInResultDTO 登录结果
type SignInResultDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UpdateProfileDTO 修改资料。指针为 nil 表示该字段未提交，
// 与提交空字符串是两种不同语义
type UpdateProfileDTO struct {
	Name         *string
	Introduction *string
}
