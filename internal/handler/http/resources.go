package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/resource"
	"github.com/MKhiriev/resourcekit/internal/validation"
	"github.com/MKhiriev/resourcekit/models"
)

var (
	productBodySchema = validation.MustCompile("product-body", `{
		"type": "object",
		"required": ["name", "price"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"price": {"type": "number", "minimum": 0}
		}
	}`)

	productPatchSchema = validation.MustCompile("product-patch", `{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"price": {"type": "number", "minimum": 0}
		}
	}`)

	orderBodySchema = validation.MustCompile("order-body", `{
		"type": "object",
		"required": ["product", "productName", "productPrice", "user"],
		"properties": {
			"ref": {"type": "string"},
			"product": {"type": "string", "minLength": 1},
			"productName": {"type": "string", "minLength": 1},
			"productPrice": {"type": "number", "minimum": 0},
			"isApproved": {"type": "boolean"},
			"user": {"type": "string", "minLength": 1}
		}
	}`)

	idParamsSchema = validation.MustCompile("id-params", `{
		"type": "object",
		"required": ["id"],
		"properties": {"id": {"type": "string", "format": "uuid"}}
	}`)

	pageQuerySchema = validation.MustCompile("page-query", `{
		"type": "object",
		"properties": {
			"page": {"type": "string", "pattern": "^[0-9]*$"},
			"page_size": {"type": "string", "pattern": "^[0-9]*$"}
		}
	}`)
)

func (h *Handler) productsRouter() http.Handler {
	controller := resource.NewController(h.services.Products,
		resource.WithVerboseErrors[models.Product](h.verboseErrors),
	)

	return resource.NewRouter(controller, resource.Config{
		Methods: resource.Methods(resource.Create, resource.List, resource.Get, resource.Update, resource.Delete),
		Validation: resource.ValidationRules{
			resource.Create: {Body: productBodySchema},
			resource.List:   {Query: pageQuerySchema},
			resource.Get:    {Params: idParamsSchema},
			resource.Update: {Body: productPatchSchema, Params: idParamsSchema},
			resource.Delete: {Params: idParamsSchema},
		},
	})
}

// ordersRouter only lets authenticated callers place orders.
func (h *Handler) ordersRouter() http.Handler {
	controller := resource.NewController(h.services.Orders,
		resource.WithVerboseErrors[models.Order](h.verboseErrors),
		resource.WithHooks(resource.Hooks[models.Order]{
			AfterCreate: func(ctx context.Context, order models.Record[models.Order]) {
				logger.FromContext(ctx).Info().
					Str("order_id", order.ID).
					Str("ref", order.Data.Ref).
					Str("user", order.Data.User).
					Msg("order placed")
			},
		}),
	)

	return resource.NewRouter(controller, resource.Config{
		Methods: resource.Methods(resource.Create, resource.List, resource.Get),
		Validation: resource.ValidationRules{
			resource.Create: {Body: orderBodySchema},
			resource.List:   {Query: pageQuerySchema},
			resource.Get:    {Params: idParamsSchema},
		},
		Middlewares: resource.Middlewares{
			Danger: []resource.Middleware{h.withAuth},
		},
	})
}

// pingHandler is a resource served without a collection.
type pingHandler struct {
	resource.Unimplemented
}

func (pingHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("pong"))
}

func (h *Handler) pingRouter() http.Handler {
	return resource.NewRouter(pingHandler{}, resource.Config{
		Methods:           resource.Methods(resource.List),
		WithoutPagination: true,
	})
}
