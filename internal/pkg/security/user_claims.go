package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims Token 中携带的用户身份，ID 字段 (jti) 用于注销
type UserClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}
