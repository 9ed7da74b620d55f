package handlers

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// parseSnowflakeID 解析十进制字符串形式的主键，必须全部是数字
func parseSnowflakeID(s string) (snowflake.ID, bool) {
	if s == "" {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return snowflake.ID(id), true
}

// trimmedKeyword 关键字去除首尾空白，空串等同于没有提供
func trimmedKeyword(keyword *string) string {
	if keyword == nil {
		return ""
	}
	return strings.TrimSpace(*keyword)
}
