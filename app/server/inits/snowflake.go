package inits

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

func Snowflake(nodeID int64) (*snowflake.Node, error) {
	// 固定纪元，保证 ID 大致按创建时间排序
	snowflake.Epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return node, nil
}
