package handlers

import (
	"net/http"
	"tag-admin-panel/app/server/types"

	"github.com/labstack/echo/v4"
)

type ErrorCode string

const (
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrConflict     ErrorCode = "CONFLICT"
	ErrValidation   ErrorCode = "VALIDATION"
	ErrInternal     ErrorCode = "INTERNAL"
)

var errStatusCode = map[ErrorCode]int{
	ErrUnauthorized: http.StatusUnauthorized,
	ErrNotFound:     http.StatusNotFound,
	ErrConflict:     http.StatusConflict,
	ErrValidation:   http.StatusBadRequest,
	ErrInternal:     http.StatusInternalServerError,
}

func (a *App) er(c echo.Context, code ErrorCode, message string) error {
	statusCode, ok := errStatusCode[code]
	if !ok {
		statusCode = http.StatusInternalServerError
	}

	return c.JSON(statusCode, &types.ErrorMessage{
		Code:    string(code),
		Message: message,
	})
}
