package api

import (
	"Blogverse/internal/api/middleware"
	"Blogverse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(group.CORSOrigins))
	logger.SetupGin(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// 身份
	r.POST("/signup", group.UserHandler.Signup)
	r.POST("/signin", group.UserHandler.Signin)

	// 上传
	r.GET("/get-upload-url", group.MediaHandler.GetUploadURL)

	// 发现
	r.GET("/latest-blogs", group.FeedHandler.Latest)
	r.GET("/trending-blogs", group.FeedHandler.Trending)
	r.POST("/search-blog-posts", group.FeedHandler.Search)
	r.GET("/search-blog-counts", group.FeedHandler.Count)
	r.POST("/search-blog-counts", group.FeedHandler.Count)

	authGroup := r.Group("")
	authGroup.Use(group.Auth)
	{
		authGroup.POST("/signout", group.UserHandler.Signout)
		authGroup.POST("/create-blog", group.PostHandler.CreatePost)
	}

	return r
}
