package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSigner struct {
	objectName string
	expires    time.Duration
	err        error
}

func (f *fakeSigner) SignPut(_ context.Context, objectName string, expires time.Duration) (string, error) {
	f.objectName = objectName
	f.expires = expires
	if f.err != nil {
		return "", f.err
	}
	return "https://bucket.example.com/" + objectName + "?X-Amz-Signature=abc", nil
}

func TestGetUploadURL(t *testing.T) {
	signer := &fakeSigner{}
	svc := NewMediaService(signer)

	url, err := svc.GetUploadURL(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{5}-\d{13}\.jpeg$`, signer.objectName)
	assert.Equal(t, 1000*time.Second, signer.expires)
	assert.Equal(t, "https://bucket.example.com/"+signer.objectName+"?X-Amz-Signature=abc", url)
}

func TestGetUploadURL_DistinctKeys(t *testing.T) {
	signer := &fakeSigner{}
	svc := NewMediaService(signer)

	_, err := svc.GetUploadURL(context.Background())
	require.NoError(t, err)
	first := signer.objectName
	_, err = svc.GetUploadURL(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, signer.objectName)
}

func TestGetUploadURL_ProviderFailure(t *testing.T) {
	boom := errors.New("access denied")
	svc := NewMediaService(&fakeSigner{err: boom})

	_, err := svc.GetUploadURL(context.Background())
	assert.ErrorIs(t, err, ErrStorageProvider)
	assert.ErrorIs(t, err, boom)
}
