package repository

import (
	"strings"
)

type SortOrder int

const (
	// SortLatest published_at 倒序
	SortLatest SortOrder = iota
	// SortTrending total_reads、total_likes、published_at 依次倒序
	SortTrending
)

// PostFilter 描述一次发现查询的筛选条件，草稿总是被排除
type PostFilter struct {
	Tag   string
	Query string
}

// NewPostFilter 由请求参数构造筛选条件。Tag 优先于 Query
func NewPostFilter(tag, query string) PostFilter {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag != "" {
		return PostFilter{Tag: tag}
	}
	return PostFilter{Query: strings.TrimSpace(query)}
}

// Match 判断文章是否满足筛选条件，供内存实现与对账使用
func (f PostFilter) Match(title string, tags []string, draft bool) bool {
	if draft {
		return false
	}
	if f.Tag != "" {
		for _, t := range tags {
			if t == f.Tag {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(f.Query))
}

type PostQuery struct {
	Filter PostFilter
	Sort   SortOrder
	Skip   int64
	Limit  int64
}
