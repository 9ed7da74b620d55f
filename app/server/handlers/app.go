package handlers

import (
	"tag-admin-panel/app/server/jwt"

	"github.com/bwmarrin/snowflake"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l   *zap.Logger     // 日志
	db  *gorm.DB        // 数据库
	rdb *redis.Client   // Redis ，用于登录限流，可以为 nil
	jwt *jwt.JWT        // JWT ，用于无状态会话
	sf  *snowflake.Node // ID 生成器
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, sf *snowflake.Node) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		jwt: j,
		sf:  sf,
	}
}
