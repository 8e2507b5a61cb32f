package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.Compress(5))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.hello)
	router.Get("/version", h.getServerVersion)
	router.Get("/version/build", h.getBuildInfo)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/password/reset", h.requestPasswordReset)
		r.Post("/password/reset/confirm", h.confirmPasswordReset)
		r.Post("/token/verify", h.verifyToken)
		r.Post("/token/refresh", h.refreshTokens)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.withAuth)
			r.Get("/user", h.user)
			r.Post("/password/change", h.changePassword)
			r.Post("/logout", h.logout)
		})
	})

	router.Mount("/products", h.productsRouter())
	router.Mount("/orders", h.ordersRouter())
	router.Mount("/ping", h.pingRouter())

	router.Route("/api", func(r chi.Router) {
		r.Get("/users", h.placeholderUsers)
		r.Get("/users/{id}/posts", h.placeholderUserPosts)
		r.Get("/load-posts", h.loadPosts)
		r.Get("/posts", h.cachedPosts)
		r.Get("/posts/{id}", h.cachedPost)
		r.Post("/files", h.uploadAvatar)
	})

	router.Handle("/static/*", h.static())

	router.MethodNotAllowed(h.notFound)

	return router
}
