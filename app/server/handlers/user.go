package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"tag-admin-panel/app/server/constants"
	"tag-admin-panel/app/server/models"
	"tag-admin-panel/app/server/types"
	"tag-admin-panel/app/server/utils"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// serializeUser 生成对外的用户视图，永远不包含密码字段
func serializeUser(user *models.User) *types.UserView {
	return &types.UserView{
		Id:         user.ID.String(),
		UserId:     user.UserID,
		Username:   user.Username,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		SuperAdmin: user.SuperAdmin,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func (a *App) usernameTaken(rctx context.Context, username string, selfID snowflake.ID) (bool, error) {
	var existing models.User
	if err := a.db.WithContext(rctx).Select("id").First(&existing, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return existing.ID != selfID, nil
}

func (a *App) userIdTaken(rctx context.Context, userID int64, selfID snowflake.ID) (bool, error) {
	var existing models.User
	if err := a.db.WithContext(rctx).Select("id").First(&existing, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return existing.ID != selfID, nil
}

// validateAvatar 头像地址允许留空（置空），非空时必须是合法 URL
func validateAvatar(avatar string) bool {
	if avatar == "" {
		return true
	}
	u, err := url.ParseRequestURI(avatar)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func (a *App) UserList(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求参数
	var req types.UserListRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	// 解析分页
	page, pageSize, err := a.parsePagination(req.Page, req.PageSize)
	if err != nil {
		return a.er(c, ErrValidation, err.Error())
	}

	keyword := trimmedKeyword(req.Keyword)

	var (
		users      []models.User
		usersCount int64
	)

	// 总数和当前页在一个事务里查询，保证两者基于同一快照
	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		countQuery := tx.Model(&models.User{})
		listQuery := tx.Model(&models.User{}).Order("id DESC").Limit(pageSize).Offset((page - 1) * pageSize)
		if keyword != "" {
			pattern := "%" + keyword + "%"
			countQuery = countQuery.Where("username LIKE ? OR full_name LIKE ?", pattern, pattern)
			listQuery = listQuery.Where("username LIKE ? OR full_name LIKE ?", pattern, pattern)
		}

		if err := countQuery.Count(&usersCount).Error; err != nil {
			return err
		}
		return listQuery.Find(&users).Error
	}); err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, ErrInternal, "failed to list users")
	}

	resUsers := []types.UserView{}
	for i := range users {
		resUsers = append(resUsers, *serializeUser(&users[i]))
	}

	return c.JSON(http.StatusOK, &types.UserListResponse{
		Items:    resUsers,
		Total:    usersCount,
		Page:     page,
		PageSize: pageSize,
	})
}

func (a *App) UserGetById(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求参数
	var req types.UserByIdRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	id, ok := parseSnowflakeID(req.Id)
	if !ok {
		return a.er(c, ErrValidation, "id must be a numeric string")
	}

	// 从数据库中获得指定的用户
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, ErrNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to get user")
	}

	return c.JSON(http.StatusOK, serializeUser(&user))
}

func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	// 校验字段
	if req.UserId <= 0 {
		return a.er(c, ErrValidation, "userId must be a positive integer")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return a.er(c, ErrValidation, "username must not be empty")
	}
	if len(req.Password) < constants.PasswordMinLength {
		return a.er(c, ErrValidation, "password must be at least 6 characters")
	}

	var fullName *string
	if req.FullName != nil {
		if f := strings.TrimSpace(*req.FullName); f != "" {
			fullName = &f
		}
	}
	var avatar *string
	if req.Avatar != nil {
		av := strings.TrimSpace(*req.Avatar)
		if !validateAvatar(av) {
			return a.er(c, ErrValidation, "avatar must be a valid URL")
		}
		if av != "" {
			avatar = &av
		}
	}

	// 预检用户名和用户编号占用
	if taken, err := a.usernameTaken(rctx, username, 0); err != nil {
		a.l.Error("failed to check username", zap.String("username", username), zap.Error(err))
		return a.er(c, ErrInternal, "failed to create user")
	} else if taken {
		return a.er(c, ErrConflict, "username already exists")
	}
	if taken, err := a.userIdTaken(rctx, req.UserId, 0); err != nil {
		a.l.Error("failed to check userId", zap.Int64("userId", req.UserId), zap.Error(err))
		return a.er(c, ErrInternal, "failed to create user")
	} else if taken {
		return a.er(c, ErrConflict, "userId already exists")
	}

	// 创建用户，密码永远以摘要入库
	user := models.User{
		ID:       a.sf.Generate(),
		UserID:   req.UserId,
		Username: username,
		FullName: fullName,
		Avatar:   avatar,
		Password: utils.HashPassword(req.Password),
	}
	if req.SuperAdmin != nil && *req.SuperAdmin {
		user.SuperAdmin = 1
	}

	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.er(c, ErrConflict, "username or userId already exists")
		}
		a.l.Error("failed to create user", zap.String("username", username), zap.Error(err))
		return a.er(c, ErrInternal, "failed to create user")
	}

	return c.JSON(http.StatusOK, serializeUser(&user))
}

func (a *App) UserUpdate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	id, ok := parseSnowflakeID(req.Id)
	if !ok {
		return a.er(c, ErrValidation, "id must be a numeric string")
	}

	// 从数据库中获得指定的用户
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, ErrNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to update user")
	}

	// 只合并提供了的字段
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return a.er(c, ErrValidation, "username must not be empty")
		}

		if taken, err := a.usernameTaken(rctx, username, user.ID); err != nil {
			a.l.Error("failed to check username", zap.String("username", username), zap.Error(err))
			return a.er(c, ErrInternal, "failed to update user")
		} else if taken {
			return a.er(c, ErrConflict, "username already exists")
		}

		user.Username = username
	}
	if req.FullName != nil {
		if f := strings.TrimSpace(*req.FullName); f == "" {
			user.FullName = nil
		} else {
			user.FullName = &f
		}
	}
	if req.Avatar != nil {
		av := strings.TrimSpace(*req.Avatar)
		if !validateAvatar(av) {
			return a.er(c, ErrValidation, "avatar must be a valid URL")
		}
		if av == "" {
			user.Avatar = nil
		} else {
			user.Avatar = &av
		}
	}
	if req.Password != nil {
		// 只有明确提供了新密码才重新生成摘要
		if len(*req.Password) < constants.PasswordMinLength {
			return a.er(c, ErrValidation, "password must be at least 6 characters")
		}
		user.Password = utils.HashPassword(*req.Password)
	}
	if req.SuperAdmin != nil {
		// 缺省时保持原值不动
		if *req.SuperAdmin {
			user.SuperAdmin = 1
		} else {
			user.SuperAdmin = 0
		}
	}

	// 保存并刷新更新时间
	if err := a.db.WithContext(rctx).Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.er(c, ErrConflict, "username already exists")
		}
		a.l.Error("failed to update user", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to update user")
	}

	return c.JSON(http.StatusOK, serializeUser(&user))
}

func (a *App) UserDelete(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.UserByIdRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	id, ok := parseSnowflakeID(req.Id)
	if !ok {
		return a.er(c, ErrValidation, "id must be a numeric string")
	}

	// 先确认存在
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, ErrNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to delete user")
	}

	// 硬删除
	if err := a.db.WithContext(rctx).Delete(&user).Error; err != nil {
		a.l.Error("failed to delete user", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to delete user")
	}

	return c.JSON(http.StatusOK, &types.SuccessResponse{Success: true})
}
