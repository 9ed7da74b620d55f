package handlers

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"tag-admin-panel/app/server/types"
	"time"

	"github.com/labstack/echo/v4"
)

// SubRandomNumber 演示用的事件流：每秒推送一个随机数，客户端断开时停止。
// 定时器的清理挂在请求的取消信号上，无论正常断开还是写入出错都只停一次。
func (a *App) SubRandomNumber(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Flush()

	rctx := c.Request().Context()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-rctx.Done():
			return nil
		case <-ticker.C:
			payload, err := json.Marshal(&types.RandomNumberEvent{RandomNumber: rand.Float64()})
			if err != nil {
				return nil
			}
			if _, err := fmt.Fprintf(c.Response(), "data: %s\n\n", payload); err != nil {
				return nil
			}
			c.Response().Flush()
		}
	}
}
