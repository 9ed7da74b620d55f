package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword 计算密码的 SHA-256 摘要（十六进制），同一密码的摘要恒定
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}
