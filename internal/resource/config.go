package resource

import (
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/validation"
)

// Middleware is the chi/net/http middleware shape.
type Middleware = func(http.Handler) http.Handler

// Middlewares are the buckets of middleware applied to a resource's routes,
// outermost first: All, then Safe or Danger, then ByMethod.
type Middlewares struct {
	// All applies to every route.
	All []Middleware
	// Safe applies to List and Get.
	Safe []Middleware
	// Danger applies to Create, Update, Patch and Delete.
	Danger []Middleware
	// ByMethod applies to the routes of one method.
	ByMethod map[Method][]Middleware
}

// Rules are the schemas of one method. A nil schema disables that check.
// Body is only used by Create, Update and Patch.
type Rules struct {
	Body   *validation.Schema
	Query  *validation.Schema
	Params *validation.Schema
}

type ValidationRules map[Method]Rules

// Config describes a resource.
type Config struct {
	Methods     MethodSet
	Validation  ValidationRules
	Middlewares Middlewares

	// WithoutPagination drops GET /paginate from List, for handlers that
	// have nothing to page through.
	WithoutPagination bool
}

// chain returns the middleware for m in application order, validation
// included.
func (c Config) chain(m Method) []Middleware {
	var mws []Middleware
	mws = append(mws, c.Middlewares.All...)
	if m.mutating() {
		mws = append(mws, c.Middlewares.Danger...)
	} else {
		mws = append(mws, c.Middlewares.Safe...)
	}
	mws = append(mws, c.Middlewares.ByMethod[m]...)

	rules := c.Validation[m]
	if rules.Query != nil {
		mws = append(mws, validateQuery(rules.Query))
	}
	if rules.Body != nil && acceptsBody(m) {
		mws = append(mws, validateBody(rules.Body))
	}
	if rules.Params != nil {
		mws = append(mws, validateParams(rules.Params))
	}

	return mws
}

func acceptsBody(m Method) bool {
	return m == Create || m == Update || m == Patch
}
