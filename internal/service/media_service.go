package service

import (
	"Blogverse/internal/pkg/util"
	"context"
	"fmt"
	"time"
)

const (
	uploadURLExpiry = 1000 * time.Second
	uploadKeyPrefix = 5
)

// URLSigner 对象存储的预签名能力
type URLSigner interface {
	SignPut(ctx context.Context, objectName string, expires time.Duration) (string, error)
}

type MediaService interface {
	GetUploadURL(ctx context.Context) (string, error)
}

type MediaServiceImpl struct {
	signer URLSigner
}

func NewMediaService(signer URLSigner) MediaService {
	return &MediaServiceImpl{signer: signer}
}

// GetUploadURL 不校验上传结果
func (s *MediaServiceImpl) GetUploadURL(ctx context.Context) (string, error) {
	objectName := fmt.Sprintf("%s-%d.jpeg", util.RandomString(uploadKeyPrefix), time.Now().UnixMilli())
	url, err := s.signer.SignPut(ctx, objectName, uploadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageProvider, err)
	}
	return url, nil
}
