package service

import (
	"Blogverse/internal/pkg/security"
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrDuplicateEmail     = errors.New("Email already exists")
	ErrEmailNotFound      = errors.New("Email not found")
	ErrAuthorNotFound     = errors.New("Author not found")
	ErrInvalidCredentials = errors.New("Incorrect password")
	ErrStorageProvider    = errors.New("Object storage provider failure")
	ErrMissingToken       = security.ErrMissingToken
	ErrInvalidToken       = security.ErrInvalidToken
)

// ErrorMap 哨兵错误到 HTTP 状态码，匹配时使用 errors.Is
var ErrorMap = map[error]int{
	ErrDuplicateEmail:     InternalServerError,
	ErrEmailNotFound:      Forbidden,
	ErrAuthorNotFound:     NotFound,
	ErrInvalidCredentials: Forbidden,
	ErrStorageProvider:    InternalServerError,
	ErrMissingToken:       Unauthorized,
	ErrInvalidToken:       Forbidden,
}

// ValidationError 第一个未通过校验的字段
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// StorageError 持久层调用失败
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// PartialWriteError 前一步已经落库，后一步失败，不回滚
type PartialWriteError struct {
	BlogID    string
	Succeeded string
	Failed    string
	Cause     error
}

func (e *PartialWriteError) Error() string {
	return "Failed to update the total posts"
}

func (e *PartialWriteError) Unwrap() error {
	return e.Cause
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
