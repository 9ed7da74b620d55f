package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"tag-admin-panel/app/server/constants"
	"tag-admin-panel/app/server/jwt"
	"tag-admin-panel/app/server/models"
	"tag-admin-panel/app/server/types"
	"tag-admin-panel/app/server/utils"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 无论账户是否存在，登录失败都返回同一条消息，避免被用来枚举账户
const loginFailedMessage = "Invalid account or password"

func (a *App) loginFailCount(rctx context.Context, account string) int64 {
	if a.rdb == nil {
		return 0
	}

	count, err := a.rdb.Get(rctx, fmt.Sprintf(constants.CacheKeyLoginFail, account)).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to get login fail counter", zap.Error(err))
		}
		return 0
	}
	return count
}

func (a *App) loginFailMark(rctx context.Context, account string) {
	if a.rdb == nil {
		return
	}

	key := fmt.Sprintf(constants.CacheKeyLoginFail, account)
	if err := a.rdb.Incr(rctx, key).Err(); err != nil {
		a.l.Error("failed to incr login fail counter", zap.Error(err))
		return
	}
	a.rdb.Expire(rctx, key, constants.CacheExpireLoginFail)
}

func (a *App) loginFailClear(rctx context.Context, account string) {
	if a.rdb == nil {
		return
	}

	a.rdb.Del(rctx, fmt.Sprintf(constants.CacheKeyLoginFail, account))
}

func (a *App) AuthLoginByPassword(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	// 校验字段
	account := strings.TrimSpace(req.Account)
	if account == "" {
		return a.er(c, ErrValidation, "account must not be empty")
	}
	if len(req.Password) < constants.PasswordMinLength {
		return a.er(c, ErrValidation, "password must be at least 6 characters")
	}

	// 失败次数过多则直接拒绝，不再访问数据库
	if a.loginFailCount(rctx, account) >= constants.LoginFailMaxAttempts {
		return a.er(c, ErrUnauthorized, loginFailedMessage)
	}

	// 账户可以是用户名，也可以是数字形式的用户编号
	accountUserID, err := strconv.ParseInt(account, 10, 64)
	if err != nil {
		accountUserID = -1
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ? OR user_id = ?", account, accountUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.loginFailMark(rctx, account)
			return a.er(c, ErrUnauthorized, loginFailedMessage)
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, ErrInternal, "failed to login")
	}

	// 校验密码摘要，兼容历史数据中的明文密码
	digest := utils.HashPassword(req.Password)
	if digest != user.Password && req.Password != user.Password {
		a.loginFailMark(rctx, account)
		return a.er(c, ErrUnauthorized, loginFailedMessage)
	}

	if req.Password == user.Password {
		// 明文密码命中，趁机升级成摘要
		if err := a.db.WithContext(rctx).Model(&user).Update("password", digest).Error; err != nil {
			a.l.Error("failed to upgrade plaintext password", zap.Error(err))
		}
	}

	a.loginFailClear(rctx, account)

	// 签出会话令牌
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.SessionUser{
		Sub:        user.ID.String(),
		Username:   user.Username,
		UserID:     user.UserID,
		SuperAdmin: int64(user.SuperAdmin),
		Expires:    expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, ErrInternal, "failed to login")
	}

	return c.JSON(http.StatusOK, &types.LoginResponse{
		Token: token,
		User:  *serializeUser(&user),
	})
}
