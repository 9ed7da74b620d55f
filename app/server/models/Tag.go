package models

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Tag struct {
	ID snowflake.ID `gorm:"column:id;primaryKey"`

	Name        string  `gorm:"column:name;size:100;uniqueIndex"` // 名称，全局唯一
	Description *string `gorm:"column:description;size:255"`      // 描述，可以为空

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}
