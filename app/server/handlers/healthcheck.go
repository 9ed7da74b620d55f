package handlers

import (
	"net/http"
	"tag-admin-panel/app/server/types"

	"github.com/labstack/echo/v4"
)

func (a *App) Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &types.HealthResponse{
		Message: "ok",
	})
}
