package handlers

import (
	"net/http"
	"tag-admin-panel/app/server/models"
	"tag-admin-panel/app/server/types"
	"tag-admin-panel/app/server/utils"
	"testing"

	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, a *App, req *types.UserCreateRequest) types.UserView {
	t.Helper()

	rec := invoke(t, a.UserCreate, http.MethodPost, "/rpc/users.create", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[types.UserView](t, rec)
}

func TestUserCreate(t *testing.T) {
	a := newTestApp(t)

	rec := invoke(t, a.UserCreate, http.MethodPost, "/rpc/users.create", &types.UserCreateRequest{
		UserId:     100,
		Username:   "alice",
		FullName:   utils.P("Alice"),
		Avatar:     utils.P("https://example.com/a.png"),
		Password:   "secret123",
		SuperAdmin: utils.P(true),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decode[types.UserView](t, rec)
	require.Regexp(t, `^\d+$`, view.Id)
	require.EqualValues(t, 100, view.UserId)
	require.Equal(t, 1, view.SuperAdmin)

	// 响应里永远不会出现密码字段
	require.NotContains(t, rec.Body.String(), "password")
	require.NotContains(t, rec.Body.String(), "secret123")

	// 入库的是摘要
	var stored models.User
	require.NoError(t, a.db.First(&stored, "username = ?", "alice").Error)
	require.Equal(t, utils.HashPassword("secret123"), stored.Password)
}

func TestUserCreateValidation(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name string
		req  *types.UserCreateRequest
	}{
		{"non positive userId", &types.UserCreateRequest{UserId: 0, Username: "x", Password: "secret123"}},
		{"empty username", &types.UserCreateRequest{UserId: 1, Username: "  ", Password: "secret123"}},
		{"short password", &types.UserCreateRequest{UserId: 1, Username: "x", Password: "12345"}},
		{"bad avatar", &types.UserCreateRequest{UserId: 1, Username: "x", Password: "secret123", Avatar: utils.P("not-a-url")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := invoke(t, a.UserCreate, http.MethodPost, "/rpc/users.create", tt.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "VALIDATION", decode[types.ErrorMessage](t, rec).Code)
		})
	}
}

func TestUserCreateConflicts(t *testing.T) {
	a := newTestApp(t)

	createUser(t, a, &types.UserCreateRequest{UserId: 1, Username: "taken", Password: "secret123"})

	// 用户名重复
	rec := invoke(t, a.UserCreate, http.MethodPost, "/rpc/users.create", &types.UserCreateRequest{
		UserId: 2, Username: "taken", Password: "secret123",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	// 用户编号重复
	rec = invoke(t, a.UserCreate, http.MethodPost, "/rpc/users.create", &types.UserCreateRequest{
		UserId: 1, Username: "fresh", Password: "secret123",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserUpdatePartial(t *testing.T) {
	a := newTestApp(t)

	created := createUser(t, a, &types.UserCreateRequest{
		UserId: 1, Username: "bob", Password: "secret123", SuperAdmin: utils.P(true),
	})

	// 只更新显示名称：权限和密码都不能被动
	rec := invoke(t, a.UserUpdate, http.MethodPost, "/rpc/users.update", &types.UserUpdateRequest{
		Id:       created.Id,
		FullName: utils.P("Bob the Builder"),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decode[types.UserView](t, rec)
	require.Equal(t, 1, updated.SuperAdmin)
	require.NotNil(t, updated.FullName)
	require.Equal(t, "Bob the Builder", *updated.FullName)

	var stored models.User
	require.NoError(t, a.db.First(&stored, "username = ?", "bob").Error)
	require.Equal(t, utils.HashPassword("secret123"), stored.Password)
	require.Equal(t, 1, stored.SuperAdmin)

	// 明确传了 superAdmin=false 才会降级
	rec = invoke(t, a.UserUpdate, http.MethodPost, "/rpc/users.update", &types.UserUpdateRequest{
		Id:         created.Id,
		SuperAdmin: utils.P(false),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, decode[types.UserView](t, rec).SuperAdmin)

	// 提供了新密码才会重新生成摘要
	rec = invoke(t, a.UserUpdate, http.MethodPost, "/rpc/users.update", &types.UserUpdateRequest{
		Id:       created.Id,
		Password: utils.P("newsecret"),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, a.db.First(&stored, "username = ?", "bob").Error)
	require.Equal(t, utils.HashPassword("newsecret"), stored.Password)
}

func TestUserUpdateNotFound(t *testing.T) {
	a := newTestApp(t)

	rec := invoke(t, a.UserUpdate, http.MethodPost, "/rpc/users.update", &types.UserUpdateRequest{
		Id: "9876", Username: utils.P("nobody"),
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserListKeyword(t *testing.T) {
	a := newTestApp(t)

	createUser(t, a, &types.UserCreateRequest{UserId: 1, Username: "carol", FullName: utils.P("Carol Danvers"), Password: "secret123"})
	createUser(t, a, &types.UserCreateRequest{UserId: 2, Username: "dave", Password: "secret123"})
	createUser(t, a, &types.UserCreateRequest{UserId: 3, Username: "erin", FullName: utils.P("Erin Carolson"), Password: "secret123"})

	// 关键字同时匹配用户名和显示名称
	rec := invoke(t, a.UserList, http.MethodGet, "/rpc/users.list?keyword=carol", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[types.UserListResponse](t, rec)
	require.EqualValues(t, 2, res.Total)
	require.Len(t, res.Items, 2)
}

func TestUserDelete(t *testing.T) {
	a := newTestApp(t)

	created := createUser(t, a, &types.UserCreateRequest{UserId: 1, Username: "gone", Password: "secret123"})

	rec := invoke(t, a.UserDelete, http.MethodPost, "/rpc/users.remove", &types.UserByIdRequest{Id: created.Id})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode[types.SuccessResponse](t, rec).Success)

	rec = invoke(t, a.UserGetById, http.MethodGet, "/rpc/users.getById?id="+created.Id, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
