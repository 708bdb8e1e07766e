package dto

import (
	"Blogverse/internal/model"
)

type CreatePostDTO struct {
	Title   string        `json:"title"`
	Des     string        `json:"des"`
	Desc    string        `json:"desc"`
	Banner  string        `json:"banner"`
	Tags    []string      `json:"tags"`
	Content model.Content `json:"content"`
	Draft   bool          `json:"draft"`
}

// Description des 与 desc 均可，des 优先
func (d *CreatePostDTO) Description() string {
	if d.Des != "" {
		return d.Des
	}
	return d.Desc
}

type CreatePostResponse struct {
	ID string `json:"id"`
}

// PartialWriteResponse 文章已写入但作者关联失败
type PartialWriteResponse struct {
	Error string `json:"error"`
	ID    string `json:"id"`
}
