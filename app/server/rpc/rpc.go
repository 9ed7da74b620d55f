package rpc

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Kind int

const (
	Query Kind = iota
	Mutation
	Subscription
)

// Procedure 是一个可以远程调用的过程，按点分名称挂载到路径上
type Procedure struct {
	Name        string // 点分名称，例如 tags.list
	Summary     string
	Kind        Kind
	Path        string // 挂载路径，留空时由点分名称推断
	Authed      bool   // 是否需要登录后才能调用
	Handler     echo.HandlerFunc
	Middlewares []echo.MiddlewareFunc
}

// MethodOf 由过程类型推断 HTTP 方法：读操作用 GET ，写操作用 POST
func MethodOf(kind Kind) string {
	if kind == Mutation {
		return http.MethodPost
	}
	return http.MethodGet
}

// PathOf 由点分名称推断挂载路径
func PathOf(prefix, name string) string {
	return prefix + "/" + name
}

func Register(e *echo.Echo, prefix string, procedures []Procedure) {
	for _, p := range procedures {
		path := p.Path
		if path == "" {
			path = PathOf(prefix, p.Name)
		}
		e.Add(MethodOf(p.Kind), path, p.Handler, p.Middlewares...)
	}
}
