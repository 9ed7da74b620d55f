package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSubRandomNumberStopsOnCancel(t *testing.T) {
	a := newTestApp(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/rpc/sub.randomNumber", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	start := time.Now()
	require.NoError(t, a.SubRandomNumber(c))

	// 请求取消后必须返回，不能一直挂着
	require.Less(t, time.Since(start), 5*time.Second)

	require.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	require.Contains(t, rec.Body.String(), "data: ")
	require.Contains(t, rec.Body.String(), "randomNumber")
}

func TestHealthcheck(t *testing.T) {
	a := newTestApp(t)

	rec := invoke(t, a.Healthcheck, http.MethodGet, "/rpc/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}
