package dto

type UploadURLDTO struct {
	UploadURL string `json:"upload_url"`
}
