package model

// Activity 文章互动计数，只由活动事件消费者修改
type Activity struct {
	TotalReads int64 `gorm:"not null;default:0" bson:"total_reads" json:"total_reads"`
	TotalLikes int64 `gorm:"not null;default:0" bson:"total_likes" json:"total_likes"`
}
