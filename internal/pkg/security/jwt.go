package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "blogverse"

var (
	ErrMissingToken = errors.New("no access token")
	ErrInvalidToken = errors.New("access token is invalid")
	ErrRevokedToken = fmt.Errorf("%w: token has been revoked", ErrInvalidToken)
)

// TokenAuthority 负责签发与校验 HS256 访问令牌。密钥在启动时注入，之后不可变
type TokenAuthority struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenAuthority ttl 为 0 时签发的 Token 不带过期时间
func NewTokenAuthority(secret string, ttl time.Duration) (*TokenAuthority, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	return &TokenAuthority{secret: []byte(secret), ttl: ttl}, nil
}

// Issue 生成一个绑定 subjectID 的 Token
func (s *TokenAuthority) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   issuer,
		},
	}
	if s.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify 校验签名与结构并解析出 Claims
func (s *TokenAuthority) Verify(tokenString string) (*UserClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL 返回签发时使用的有效期
func (s *TokenAuthority) TTL() time.Duration {
	return s.ttl
}
