package util

import (
	"regexp"
	"strings"
)

const slugSuffixLen = 12

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// BuildSlug 去掉标题中的非字母数字字符，空白折叠为 "-"，并追加随机后缀。
// 唯一性依赖随机后缀，不查询已有记录
func BuildSlug(title string) string {
	words := strings.Fields(nonAlphanumeric.ReplaceAllString(title, " "))
	suffix := RandomString(slugSuffixLen)
	if len(words) == 0 {
		return suffix
	}
	return strings.Join(words, "-") + "-" + suffix
}
