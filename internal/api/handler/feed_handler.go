package handler

import (
	"Blogverse/internal/api/dto"
	"Blogverse/internal/pkg/response"
	"Blogverse/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedSvc: feedSvc,
	}
}

func (s *FeedHandler) Latest(c *gin.Context) {
	blogs, err := s.feedSvc.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BlogListDTO{Blogs: blogs})
}

func (s *FeedHandler) Trending(c *gin.Context) {
	blogs, err := s.feedSvc.Trending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BlogListDTO{Blogs: blogs})
}

func (s *FeedHandler) Search(c *gin.Context) {
	var searchDTO dto.SearchDTO
	if err := bindOptionalJSON(c, &searchDTO); err != nil {
		response.BindError(c, err)
		return
	}
	blogs, err := s.feedSvc.Search(c.Request.Context(), &searchDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BlogListDTO{Blogs: blogs})
}

// Count GET 先读取查询参数，再读取可选的 JSON 请求体 (请求体中的字段优先)；POST 只读取 JSON
func (s *FeedHandler) Count(c *gin.Context) {
	var countDTO dto.SearchCountDTO
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&countDTO)
		if err == nil && c.Request.ContentLength != 0 {
			err = bindOptionalJSON(c, &countDTO)
		}
	} else {
		err = bindOptionalJSON(c, &countDTO)
	}
	if err != nil {
		response.BindError(c, err)
		return
	}
	total, err := s.feedSvc.Count(c.Request.Context(), &countDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CountDTO{TotalDocs: total})
}

// bindOptionalJSON 空请求体视为所有字段取零值
func bindOptionalJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
