package middleware

import (
	"Blogverse/internal/pkg/consts"
	"Blogverse/internal/pkg/response"
	"Blogverse/internal/pkg/security"
	"context"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(tokens *security.TokenAuthority, denylist security.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Verify(extractToken(c.GetHeader("Authorization")))
		if err != nil {
			response.Error(c, err)
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "denylist lookup failed", "err", err)
			response.Fail(c, http.StatusInternalServerError, "Could not verify access token")
			return
		}
		if revoked {
			response.Error(c, security.ErrRevokedToken)
			return
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.ClaimsKey, claims)

		newCtx := context.WithValue(c.Request.Context(), consts.UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// extractToken 取 scheme 之后的部分，不校验 scheme 名称
func extractToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
