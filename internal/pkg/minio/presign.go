package minio

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// presignAPI *minio.Client 中签发上传地址所需的方法
type presignAPI interface {
	PresignedPutObject(ctx context.Context, bucketName, objectName string, expires time.Duration) (*url.URL, error)
}

// UploadSigner 为单个存储桶签发只写的预签名 URL
type UploadSigner struct {
	api    presignAPI
	bucket string
}

func NewUploadSigner(api presignAPI, bucket string) *UploadSigner {
	return &UploadSigner{api: api, bucket: bucket}
}

// SignPut 返回对象 objectName 的 PUT 预签名地址
func (s *UploadSigner) SignPut(ctx context.Context, objectName string, expires time.Duration) (string, error) {
	u, err := s.api.PresignedPutObject(ctx, s.bucket, objectName, expires)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return u.String(), nil
}
