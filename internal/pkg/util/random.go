package util

import (
	"strings"

	"github.com/google/uuid"
)

// RandomString 返回 n 位随机十六进制字符
func RandomString(n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	return b.String()[:n]
}
