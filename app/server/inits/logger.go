package inits

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger 按运行环境切换日志配置：生产环境输出 JSON ，其余环境用开发格式方便阅读
func Logger(isProd bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if isProd {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
