package constants

import "time"

// 会话令牌有效期
const AuthTokenDuration = 7 * 24 * time.Hour

// JWT_SECRET 未设置时的开发用默认密钥，部署环境必须覆盖
const DevJWTSecret = "tag-admin-dev-secret"

const (
	CacheKeyLoginFail    = "tagadmin:login:fail:%s"
	CacheExpireLoginFail = 15 * time.Minute
	LoginFailMaxAttempts = 10
)
