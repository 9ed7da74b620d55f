package handlers

import (
	"tag-admin-panel/app/server/middlewares"
	"tag-admin-panel/app/server/rpc"

	"github.com/labstack/echo/v4"
)

// Procedures 返回完整的过程表，路由注册和 API 文档都从这里生成
func (a *App) Procedures() []rpc.Procedure {
	authed := []echo.MiddlewareFunc{middlewares.RequireAccount}

	return []rpc.Procedure{
		{Name: "health", Summary: "Health check", Kind: rpc.Query, Handler: a.Healthcheck},

		{Name: "auth.loginByPassword", Summary: "Login by username or userId", Kind: rpc.Mutation, Handler: a.AuthLoginByPassword},

		{Name: "sub.randomNumber", Summary: "Random number stream (demo)", Kind: rpc.Subscription, Handler: a.SubRandomNumber},

		{Name: "tags.list", Summary: "List tags", Kind: rpc.Query, Authed: true, Handler: a.TagList, Middlewares: authed},
		{Name: "tags.getById", Summary: "Get tag by id", Kind: rpc.Query, Authed: true, Handler: a.TagGetById, Middlewares: authed},
		{Name: "tags.create", Summary: "Create tag", Kind: rpc.Mutation, Authed: true, Handler: a.TagCreate, Middlewares: authed},
		{Name: "tags.update", Summary: "Update tag", Kind: rpc.Mutation, Authed: true, Handler: a.TagUpdate, Middlewares: authed},
		{Name: "tags.remove", Summary: "Delete tag", Kind: rpc.Mutation, Authed: true, Handler: a.TagDelete, Middlewares: authed},

		{Name: "users.list", Summary: "List users", Kind: rpc.Query, Authed: true, Handler: a.UserList, Middlewares: authed},
		{Name: "users.getById", Summary: "Get user by id", Kind: rpc.Query, Authed: true, Handler: a.UserGetById, Middlewares: authed},
		{Name: "users.create", Summary: "Create user", Kind: rpc.Mutation, Authed: true, Handler: a.UserCreate, Middlewares: authed},
		{Name: "users.update", Summary: "Update user", Kind: rpc.Mutation, Authed: true, Handler: a.UserUpdate, Middlewares: authed},
		{Name: "users.remove", Summary: "Delete user", Kind: rpc.Mutation, Authed: true, Handler: a.UserDelete, Middlewares: authed},
	}
}
