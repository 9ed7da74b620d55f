package middlewares

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"tag-admin-panel/app/server/jwt"
	"tag-admin-panel/app/server/models"
	"tag-admin-panel/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const accountContextKey = "account"

// parseBearerToken 仅接受形如 Bearer <token> 的单值请求头，其余情况都视为未携带令牌
func parseBearerToken(values []string) string {
	if len(values) != 1 {
		return ""
	}

	splits := strings.Split(values[0], " ")
	if len(splits) != 2 {
		return ""
	}

	if splits[0] != "Bearer" || splits[1] == "" {
		return ""
	}

	return splits[1]
}

// Session 在每个请求上解析一次会话：提取令牌、校验声明、加载账户。
// 任何一步失败都只会降级为匿名请求，不会直接报错，由后面的授权检查给出统一的拒绝信号。
func Session(db *gorm.DB, j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 提取 token
			token := parseBearerToken(c.Request().Header.Values("Authorization"))
			if token == "" {
				return next(c)
			}

			// 验证 token
			sessionUser, err := j.ParseUser(token)
			if err != nil {
				return next(c)
			}

			// 主键字符串转数字
			id, err := strconv.ParseInt(sessionUser.Sub, 10, 64)
			if err != nil {
				return next(c)
			}

			rctx := c.Request().Context()

			// 查询数据库
			var user models.User
			if err := db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					l.Error("failed to load session account", zap.Int64("id", id), zap.Error(err))
				}
				return next(c)
			}

			// 设置 context
			c.Set(accountContextKey, &user)

			// 继续处理
			return next(c)
		}
	}
}

// AccountFrom 返回当前请求解析出的账户，匿名请求返回 nil
func AccountFrom(c echo.Context) *models.User {
	if user, ok := c.Get(accountContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// RequireAccount 拦截没有有效账户的请求，所有需要登录的过程都通过它组合
func RequireAccount(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if AccountFrom(c) == nil {
			return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{
				Code:    "UNAUTHORIZED",
				Message: "Unauthorized",
			})
		}
		return next(c)
	}
}
