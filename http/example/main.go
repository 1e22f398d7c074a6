/*
Package main provides a toy example use of tollgate's http stack.

Each route shapes and checks its request with Rules from package req
before the handler ever sees it.
Try:

	curl 'localhost:8080/search?q=a.b&fields=name,email&page=2'
	curl -X PUT localhost:8080/items/7 -d '{"name":"gopher","tags":["a"]}'
	curl -X POST 'localhost:8080/objects/p?queryArg=q' -d '{"bodyArg":"b"}'
*/
package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/xy-planning-network/tollgate/http/req"
	"github.com/xy-planning-network/tollgate/http/resp"
	"github.com/xy-planning-network/tollgate/http/router"
	"github.com/xy-planning-network/tollgate/keeper"
)

func main() {
	k, err := keeper.New()
	if err != nil {
		panic(err)
	}

	h := &handler{Keeper: k, parser: req.NewParser()}
	k.HandleRoutes(h.routes())

	if err := k.Open(); err != nil {
		k.Logger().Fatal(err.Error(), nil)
	}
}

// handler shares the configured *keeper.Keeper across all example responses.
type handler struct {
	*keeper.Keeper
	parser *req.Parser
}

func (h *handler) routes() []router.Route {
	return []router.Route{
		{
			Path:    "/search",
			Method:  http.MethodGet,
			Handler: h.search,
			Rules: []req.Rule{
				req.CollectValidation(),
				req.QueryMustHave("q"),
				req.Escape(req.Query, "q"),
				req.InList("query.fields", "name", "email", "age"),
				req.ToInts("page"),
				req.InRange("query.page", 1, 100),
				req.ObjectifyRequestData([]string{"q", "fields", "page"}, false),
			},
		},
		{
			Path:    "/items/{id}",
			Method:  http.MethodPut,
			Handler: h.updateItem,
			Rules: []req.Rule{
				req.CollectValidation(),
				req.BodyMustHave("name"),
				req.ObjectifyRequestData([]string{"id", "name", "tags"}, false),
			},
		},
		{
			Path:    "/objects/{paramsArg}",
			Method:  http.MethodPost,
			Handler: h.objects,
			Rules: []req.Rule{
				req.ObjectifyRequestData([]string{"bodyArg", "paramsArg", "queryArg"}, true),
			},
		},
	}
}

// search responds with the pattern a client can safely build a regular expression from.
// A repeated q matches any of its values.
func (h *handler) search(w http.ResponseWriter, r *http.Request) {
	data, _ := req.FromContext(r.Context())
	args := data.Args("q", "fields", "page")

	var pattern string
	switch q := args[0].(type) {
	case string:
		pattern = "^" + q
	case []string:
		pattern = "^(?:" + strings.Join(q, "|") + ")"
	}

	h.Json(w, r, resp.Data(map[string]any{
		"pattern": pattern,
		"fields":  args[1],
		"page":    args[2],
	}))
}

type item struct {
	ID   int      `json:"id" validate:"gte=1"`
	Name string   `json:"name" validate:"required,max=64"`
	Tags []string `json:"tags" validate:"max=5,dive,alphanum"`
}

// updateItem binds the aggregate into an item.
func (h *handler) updateItem(w http.ResponseWriter, r *http.Request) {
	data, _ := req.FromContext(r.Context())

	var it item
	err := h.parser.ParseData(data.Data, &it)

	var invalid req.ValidationErrors
	if errors.As(err, &invalid) {
		h.Json(w, r, resp.Code(http.StatusUnprocessableEntity), resp.Data(invalid))
		return
	}

	if err != nil {
		h.Err(w, r, err)
		return
	}

	h.Json(w, r, resp.Data(it))
}

// objects echoes the aggregate.
func (h *handler) objects(w http.ResponseWriter, r *http.Request) {
	data, _ := req.FromContext(r.Context())
	h.Json(w, r, resp.Data(data.Args(req.AllData)[0]))
}
