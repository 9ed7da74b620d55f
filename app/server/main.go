package main

import (
	"fmt"
	"log"
	"tag-admin-panel/app/server/apidocs"
	"tag-admin-panel/app/server/constants"
	"tag-admin-panel/app/server/handlers"
	"tag-admin-panel/app/server/inits"
	"tag-admin-panel/app/server/jwt"
	"tag-admin-panel/app/server/middlewares"
	"tag-admin-panel/app/server/rpc"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	if cfg.Security.JWTSecretIsDev {
		l.Warn("JWT_SECRET not set, using development default key")
	}

	// 初始化 ID 生成器
	sf, err := inits.Snowflake(cfg.System.SnowflakeNode)
	if err != nil {
		l.Fatal("error initializing snowflake node", zap.Error(err))
	}

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString, sf)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.JWTSecret)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j, sf)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.String("requestID", v.RequestID),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// 会话解析，每个请求只执行一次
	e.Use(middlewares.Session(db, j, l))

	// 绑定 RPC 过程
	rpc.Register(e, constants.RPCPrefix, handlerApp.Procedures())

	// 添加 API 文档
	if !cfg.System.IsProd {
		if specJson, err := apidocs.Spec(handlerApp.Procedures()); err != nil {
			l.Error("error building api spec", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc(constants.RPCPrefix, specJson))
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
