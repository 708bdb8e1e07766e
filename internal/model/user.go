package model

import (
	"time"
)

type User struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" bson:"_id" json:"id"`
	Fullname   string    `gorm:"type:varchar(100);not null" bson:"fullname" json:"fullname"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_email" bson:"email" json:"email"`
	Password   string    `gorm:"type:varchar(255);not null" bson:"password" json:"-"`
	Username   string    `gorm:"type:varchar(100);not null;uniqueIndex:uniq_username" bson:"username" json:"username"`
	ProfileImg string    `gorm:"type:varchar(512)" bson:"profile_img" json:"profile_img"`
	TotalPosts int64     `gorm:"not null;default:0" bson:"total_posts" json:"total_posts"`
	TotalReads int64     `gorm:"not null;default:0" bson:"total_reads" json:"total_reads"`
	Blogs      []string  `gorm:"type:json;serializer:json" bson:"blogs" json:"blogs"`
	JoinedAt   time.Time `gorm:"autoCreateTime" bson:"joined_at" json:"joined_at"`
}

func (User) TableName() string {
	return "users"
}

// OwnsPost 判断 postID 是否已在作者的文章列表中
func (u *User) OwnsPost(postID string) bool {
	for _, id := range u.Blogs {
		if id == postID {
			return true
		}
	}
	return false
}
