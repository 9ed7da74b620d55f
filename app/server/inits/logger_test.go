package inits

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger(t *testing.T) {
	// 非生产环境放开 debug 级别
	dev, err := Logger(false)
	require.NoError(t, err)
	require.True(t, dev.Core().Enabled(zap.DebugLevel))

	// 生产环境只保留 info 及以上
	prod, err := Logger(true)
	require.NoError(t, err)
	require.False(t, prod.Core().Enabled(zap.DebugLevel))
	require.True(t, prod.Core().Enabled(zap.InfoLevel))
}
