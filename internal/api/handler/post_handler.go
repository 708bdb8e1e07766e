package handler

import (
	"Blogverse/internal/api/dto"
	"Blogverse/internal/api/middleware"
	"Blogverse/internal/pkg/response"
	"Blogverse/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var postDTO dto.CreatePostDTO
	if err := c.ShouldBindJSON(&postDTO); err != nil {
		response.BindError(c, err)
		return
	}
	blogID, err := s.postSvc.CreatePost(c.Request.Context(), middleware.GetUserID(c), &postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CreatePostResponse{ID: blogID})
}
