package apidocs

import (
	"net/http"
	"net/http/httptest"
	"tag-admin-panel/app/server/rpc"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testProcedures() []rpc.Procedure {
	return []rpc.Procedure{
		{Name: "health", Summary: "Health check", Kind: rpc.Query},
		{Name: "tags.create", Summary: "Create tag", Kind: rpc.Mutation, Authed: true},
	}
}

func TestSpec(t *testing.T) {
	raw, err := Spec(testProcedures())
	require.NoError(t, err)

	body := string(raw)
	require.Contains(t, body, `"/health"`)
	require.Contains(t, body, `"/tags.create"`)
	require.Contains(t, body, "bearerAuth")

	// 路径相对 RPC 前缀，前缀以 server 条目给出
	require.Contains(t, body, `"url":"/rpc"`)
}

func TestDoc(t *testing.T) {
	raw, err := Spec(testProcedures())
	require.NoError(t, err)

	e := echo.New()
	e.Pre(Doc("/rpc", raw))

	// 文档页
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rpc/apidocs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "api-reference")

	// 文档 JSON
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rpc/apispec.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"/tags.create"`)

	// 根路径重定向到文档页
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rpc", nil))
	require.Equal(t, http.StatusFound, rec.Code)
}
