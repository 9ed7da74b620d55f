package inits

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"tag-admin-panel/app/server/config"
	"tag-admin-panel/app/server/constants"

	"github.com/joho/godotenv"
)

func Config() (cfg *config.Config, err error) {
	// 尝试加载 .env ，失败也没关系（容器部署时直接注入环境变量）
	_ = godotenv.Load()

	cfg = &config.Config{}

	// 手动配置映射，如果这里有什么自动映射工具就好了， viper 好像处理这种基于环境变量的配置也不是很方便
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":2022" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if nodeStr, exist := os.LookupEnv("SNOWFLAKE_NODE"); !exist {
		cfg.System.SnowflakeNode = 1
	} else if node, err := strconv.ParseInt(nodeStr, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid SNOWFLAKE_NODE value %q: %w", nodeStr, err)
	} else {
		cfg.System.SnowflakeNode = node
	}

	if secret, exist := os.LookupEnv("JWT_SECRET"); !exist || secret == "" {
		// 回落到开发用默认密钥，启动后会打印警告
		cfg.Security.JWTSecret = constants.DevJWTSecret
		cfg.Security.JWTSecretIsDev = true
	} else {
		cfg.Security.JWTSecret = secret
	}

	return cfg, nil
}
