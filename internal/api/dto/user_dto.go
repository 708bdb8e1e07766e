package dto

// SignupDTO 字段顺序即校验顺序
type SignupDTO struct {
	Fullname string `json:"fullname" validate:"min=3"`
	Email    string `json:"email" validate:"required,blog_email"`
	Password string `json:"password" validate:"blog_password"`
}

type SigninDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionDTO 注册与登录成功后返回
type SessionDTO struct {
	AccessToken  string `json:"access_token"`
	ProfileImage string `json:"profile_image"`
	Username     string `json:"username"`
	Fullname     string `json:"fullname"`
}
