package handler

import (
	"Blogverse/internal/api/dto"
	"Blogverse/internal/pkg/response"
	"Blogverse/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

func (s *MediaHandler) GetUploadURL(c *gin.Context) {
	url, err := s.mediaSvc.GetUploadURL(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.UploadURLDTO{UploadURL: url})
}
