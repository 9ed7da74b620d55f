package apidocs

import (
	"net/http"
	"strings"
	"tag-admin-panel/app/server/constants"
	"tag-admin-panel/app/server/rpc"

	"github.com/getkin/kin-openapi/openapi3"
)

// Spec 从过程表生成 OpenAPI 文档
func Spec(procedures []rpc.Procedure) ([]byte, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Tag Admin RPC",
			Description: "API docs for the tag admin panel.",
			Version:     "1.0.0",
		},
		// 过程统一挂载在 RPC 前缀下，文档里的路径都是相对它的
		Servers: openapi3.Servers{
			&openapi3.Server{URL: constants.RPCPrefix},
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			SecuritySchemes: openapi3.SecuritySchemes{
				"bearerAuth": &openapi3.SecuritySchemeRef{
					Value: openapi3.NewJWTSecurityScheme(),
				},
			},
		},
	}

	for _, p := range procedures {
		op := openapi3.NewOperation()
		op.Summary = p.Summary
		op.Responses = openapi3.NewResponses()

		// 用点分名称的第一段做分组
		op.Tags = []string{strings.SplitN(p.Name, ".", 2)[0]}

		if p.Authed {
			op.Security = openapi3.NewSecurityRequirements().
				With(openapi3.NewSecurityRequirement().Authenticate("bearerAuth"))
		}

		item := &openapi3.PathItem{}
		switch rpc.MethodOf(p.Kind) {
		case http.MethodGet:
			item.Get = op
		case http.MethodPost:
			item.Post = op
		}
		doc.Paths.Set("/"+p.Name, item)
	}

	return doc.MarshalJSON()
}
