package model

import (
	"time"
)

type Post struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`
	BlogID      string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_blog_id" bson:"blog_id" json:"blog_id"`
	Title       string    `gorm:"type:varchar(255);not null" bson:"title" json:"title"`
	Des         string    `gorm:"type:varchar(200)" bson:"des" json:"des"`
	Banner      string    `gorm:"type:varchar(512)" bson:"banner" json:"banner"`
	Content     Content   `gorm:"type:json;serializer:json" bson:"content" json:"content"`
	Tags        []string  `gorm:"type:json;serializer:json" bson:"tags" json:"tags"`
	Author      string    `gorm:"type:varchar(36);not null;index:idx_author" bson:"author" json:"author"`
	Activity    Activity  `gorm:"embedded;embeddedPrefix:activity_" bson:"activity" json:"activity"`
	Draft       bool      `gorm:"not null;default:false;index:idx_draft_published,priority:1" bson:"draft" json:"draft"`
	PublishedAt time.Time `gorm:"not null;index:idx_draft_published,priority:2" bson:"published_at" json:"published_at"`
}

func (Post) TableName() string {
	return "blogs"
}

// HasTag 判断文章是否包含指定标签
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
