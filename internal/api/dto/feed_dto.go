package dto

import (
	"Blogverse/internal/model"
	"time"
)

type AuthorDTO struct {
	Fullname   string `json:"fullname"`
	Username   string `json:"username"`
	ProfileImg string `json:"profile_img"`
}

// BlogCardDTO 发现接口的公开投影，不包含正文与内部 ID
type BlogCardDTO struct {
	BlogID      string         `json:"blog_id"`
	Title       string         `json:"title"`
	Des         string         `json:"des"`
	Banner      string         `json:"banner"`
	Activity    model.Activity `json:"activity"`
	Tags        []string       `json:"tags"`
	PublishedAt time.Time      `json:"published_at"`
	Author      AuthorDTO      `json:"author" copier:"-"`
}

type BlogListDTO struct {
	Blogs []*BlogCardDTO `json:"blogs"`
}

type SearchDTO struct {
	Tag   string `json:"tag"`
	Query string `json:"query"`
	Page  int64  `json:"page"`
}

type SearchCountDTO struct {
	Tag   string `json:"tag" form:"tag"`
	Query string `json:"query" form:"query"`
}

type CountDTO struct {
	TotalDocs int64 `json:"total_docs"`
}
