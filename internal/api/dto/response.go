package dto

// ErrorResponse 所有失败响应的结构
type ErrorResponse struct {
	Error string `json:"error"`
}
