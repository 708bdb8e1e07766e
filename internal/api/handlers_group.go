package api

import (
	"Blogverse/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler  *handler.UserHandler
	PostHandler  *handler.PostHandler
	FeedHandler  *handler.FeedHandler
	MediaHandler *handler.MediaHandler

	// Auth 需要登录的接口使用
	Auth        gin.HandlerFunc
	CORSOrigins []string
}
