package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Chirper"
	JWTExpirationTime        = time.Hour * 24 * 30
)

// UserClaims Token 负载携带签发时刻的完整用户资料快照，
// 验证方需将其视为可能过期的数据而非实时引用
type UserClaims struct {
	UserID       uint64 `json:"id"`
	Account      string `json:"account"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar"`
	Cover        string `json:"cover"`
	Introduction string `json:"introduction"`
	jwt.RegisteredClaims
}
