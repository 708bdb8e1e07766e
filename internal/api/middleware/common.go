package middleware

import (
	"Blogverse/internal/pkg/consts"
	"Blogverse/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// GetUserID 读取 AuthMiddleware 写入的用户 ID
func GetUserID(c *gin.Context) string {
	return c.GetString(consts.UserIDKey)
}

func GetClaims(c *gin.Context) *security.UserClaims {
	value, ok := c.Get(consts.ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*security.UserClaims)
	return claims
}
