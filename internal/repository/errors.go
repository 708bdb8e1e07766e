package repository

import (
	"errors"
	"strings"
)

// 唯一索引名称，Mongo 与 MySQL 共用，用于区分冲突字段
const (
	EmailIndex    = "uniq_email"
	UsernameIndex = "uniq_username"
	BlogIDIndex   = "uniq_blog_id"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("duplicate email")
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrDuplicateBlogID   = errors.New("duplicate blog id")
)

// ClassifyDuplicate 根据存储层返回的唯一键冲突信息判断冲突的索引
func ClassifyDuplicate(msg string) error {
	switch {
	case strings.Contains(msg, EmailIndex):
		return ErrDuplicateEmail
	case strings.Contains(msg, UsernameIndex):
		return ErrDuplicateUsername
	case strings.Contains(msg, BlogIDIndex):
		return ErrDuplicateBlogID
	}
	return nil
}
