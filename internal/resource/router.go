package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// route is one materialised endpoint.
type route struct {
	method    Method
	verb      string
	pattern   string
	handler   http.HandlerFunc
	paginated bool
}

func routesOf(h Handler) []route {
	return []route{
		{method: Create, verb: http.MethodPost, pattern: "/", handler: h.Create},
		{method: List, verb: http.MethodGet, pattern: "/", handler: h.List},
		{method: List, verb: http.MethodGet, pattern: "/paginate", handler: h.ListPaginated, paginated: true},
		{method: List, verb: http.MethodGet, pattern: "/paginate/", handler: h.ListPaginated, paginated: true},
		{method: Get, verb: http.MethodGet, pattern: "/{id}", handler: h.Get},
		{method: Update, verb: http.MethodPut, pattern: "/{id}", handler: h.Update},
		{method: Patch, verb: http.MethodPatch, pattern: "/{id}", handler: h.Patch},
		{method: Delete, verb: http.MethodDelete, pattern: "/{id}", handler: h.Delete},
	}
}

// NewRouter registers the routes of every method in cfg.Methods, in the
// order Create, List, ListPaginated, Get, Update, Patch, Delete. A nil
// handler yields a router without routes.
//
// Requests with a verb that is not registered on a known path get a plain
// 404, the same as an unknown path. Record routes always take their
// identifier from the "id" path parameter.
func NewRouter(h Handler, cfg Config) chi.Router {
	router := chi.NewRouter()
	router.MethodNotAllowed(http.NotFound)

	if h == nil {
		return router
	}

	for _, rt := range routesOf(h) {
		if !cfg.Methods.Has(rt.method) || (rt.paginated && cfg.WithoutPagination) {
			continue
		}
		router.With(cfg.chain(rt.method)...).Method(rt.verb, rt.pattern, rt.handler)
	}

	return router
}
