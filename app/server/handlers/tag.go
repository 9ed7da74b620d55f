package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"tag-admin-panel/app/server/constants"
	"tag-admin-panel/app/server/models"
	"tag-admin-panel/app/server/types"
	"unicode/utf8"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func serializeTag(tag *models.Tag) *types.TagView {
	return &types.TagView{
		Id:          tag.ID.String(),
		Name:        tag.Name,
		Description: tag.Description,
		CreatedAt:   tag.CreatedAt,
		UpdatedAt:   tag.UpdatedAt,
	}
}

// tagNameTaken 检查名称是否被其他记录占用，只是提前给出友好提示，真正的保证是唯一索引
func (a *App) tagNameTaken(rctx context.Context, name string, selfID snowflake.ID) (bool, error) {
	var existing models.Tag
	if err := a.db.WithContext(rctx).Select("id").First(&existing, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return existing.ID != selfID, nil
}

func (a *App) TagList(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求参数
	var req types.TagListRequest
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
		tags      []models.Tag
		tagsCount int64
	)

	// 总数和当前页在一个事务里查询，保证两者基于同一快照
	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		countQuery := tx.Model(&models.Tag{})
		listQuery := tx.Model(&models.Tag{}).Order("id DESC").Limit(pageSize).Offset((page - 1) * pageSize)
		if keyword != "" {
			pattern := "%" + keyword + "%"
			countQuery = countQuery.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
			listQuery = listQuery.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
		}

		if err := countQuery.Count(&tagsCount).Error; err != nil {
			return err
		}
		return listQuery.Find(&tags).Error
	}); err != nil {
		a.l.Error("failed to get tag list", zap.Error(err))
		return a.er(c, ErrInternal, "failed to list tags")
	}

	resTags := []types.TagView{}
	for i := range tags {
		resTags = append(resTags, *serializeTag(&tags[i]))
	}

	return c.JSON(http.StatusOK, &types.TagListResponse{
		Items:    resTags,
		Total:    tagsCount,
		Page:     page,
		PageSize: pageSize,
	})
}

func (a *App) TagGetById(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求参数
	var req types.TagByIdRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	id, ok := parseSnowflakeID(req.Id)
	if !ok {
		return a.er(c, ErrValidation, "id must be a numeric string")
	}

	// 从数据库中获得指定的 tag
	var tag models.Tag
	if err := a.db.WithContext(rctx).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, ErrNotFound, "Tag 不存在或已删除")
		}
		a.l.Error("failed to get tag", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to get tag")
	}

	return c.JSON(http.StatusOK, serializeTag(&tag))
}

func (a *App) TagCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.TagCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	// 校验字段
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return a.er(c, ErrValidation, "Tag 名称不能为空")
	}
	if utf8.RuneCountInString(name) > constants.TagNameMaxLength {
		return a.er(c, ErrValidation, "Tag 名称不能超过 100 个字符")
	}

	var description *string
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(d) > constants.TagDescriptionMaxLength {
			return a.er(c, ErrValidation, "描述不能超过 255 个字符")
		}
		if d != "" {
			description = &d
		}
	}

	// 预检名称占用
	if taken, err := a.tagNameTaken(rctx, name, 0); err != nil {
		a.l.Error("failed to check tag name", zap.String("name", name), zap.Error(err))
		return a.er(c, ErrInternal, "failed to create tag")
	} else if taken {
		return a.er(c, ErrConflict, "Tag 名称已存在")
	}

	// 创建记录
	tag := models.Tag{
		ID:          a.sf.Generate(),
		Name:        name,
		Description: description,
	}
	if err := a.db.WithContext(rctx).Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 预检和插入之间的竞态由唯一索引兜住
			return a.er(c, ErrConflict, "Tag 名称已存在")
		}
		a.l.Error("failed to create tag", zap.Any("tag", tag), zap.Error(err))
		return a.er(c, ErrInternal, "failed to create tag")
	}

	return c.JSON(http.StatusOK, serializeTag(&tag))
}

func (a *App) TagUpdate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.TagUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	id, ok := parseSnowflakeID(req.Id)
	if !ok {
		return a.er(c, ErrValidation, "id must be a numeric string")
	}

	// 从数据库中获得指定的 tag
	var tag models.Tag
	if err := a.db.WithContext(rctx).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, ErrNotFound, "Tag 不存在或已删除")
		}
		a.l.Error("failed to get tag", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to update tag")
	}

	// 只合并提供了的字段
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return a.er(c, ErrValidation, "Tag 名称不能为空")
		}
		if utf8.RuneCountInString(name) > constants.TagNameMaxLength {
			return a.er(c, ErrValidation, "Tag 名称不能超过 100 个字符")
		}

		if taken, err := a.tagNameTaken(rctx, name, tag.ID); err != nil {
			a.l.Error("failed to check tag name", zap.String("name", name), zap.Error(err))
			return a.er(c, ErrInternal, "failed to update tag")
		} else if taken {
			return a.er(c, ErrConflict, "Tag 名称已存在")
		}

		tag.Name = name
	}
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(d) > constants.TagDescriptionMaxLength {
			return a.er(c, ErrValidation, "描述不能超过 255 个字符")
		}
		// 传空串表示清除描述，和用户资料字段的约定一致
		if d == "" {
			tag.Description = nil
		} else {
			tag.Description = &d
		}
	}

	// 保存并刷新更新时间
	if err := a.db.WithContext(rctx).Save(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.er(c, ErrConflict, "Tag 名称已存在")
		}
		a.l.Error("failed to update tag", zap.Any("tag", tag), zap.Error(err))
		return a.er(c, ErrInternal, "failed to update tag")
	}

	return c.JSON(http.StatusOK, serializeTag(&tag))
}

func (a *App) TagDelete(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.TagByIdRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, ErrValidation, "invalid request")
	}

	id, ok := parseSnowflakeID(req.Id)
	if !ok {
		return a.er(c, ErrValidation, "id must be a numeric string")
	}

	// 先确认存在
	var tag models.Tag
	if err := a.db.WithContext(rctx).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, ErrNotFound, "Tag 不存在或已删除")
		}
		a.l.Error("failed to get tag", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to delete tag")
	}

	// 硬删除
	if err := a.db.WithContext(rctx).Delete(&tag).Error; err != nil {
		a.l.Error("failed to delete tag", zap.String("id", req.Id), zap.Error(err))
		return a.er(c, ErrInternal, "failed to delete tag")
	}

	return c.JSON(http.StatusOK, &types.SuccessResponse{Success: true})
}
