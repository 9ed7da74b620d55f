package models

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type User struct {
	ID snowflake.ID `gorm:"column:id;primaryKey"`

	// 基础信息
	UserID   int64   `gorm:"column:user_id;uniqueIndex"`           // 对外的用户编号，全局唯一
	Username string  `gorm:"column:username;size:100;uniqueIndex"` // 用户名，全局唯一
	FullName *string `gorm:"column:full_name;size:100"`            // 显示名称
	Avatar   *string `gorm:"column:avatar;size:255"`               // 头像地址

	// 登录与授权认证相关
	Password   string `gorm:"column:password"`    // 密码，以 SHA-256 摘要储存
	SuperAdmin int    `gorm:"column:super_admin"` // 是否为超级管理员：0 普通用户，1 超级管理员

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}
