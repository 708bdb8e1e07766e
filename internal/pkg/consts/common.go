package consts

const (
	// DefaultProfileImgURL 按用户名生成默认头像
	DefaultProfileImgURL = "https://api.dicebear.com/6.x/notionists-neutral/svg?seed=%s"
)

// gin.Context 中的键
const (
	UserIDKey = "user_id"
	ClaimsKey = "claims"
)
