package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmeshcher/blueprint-system/internal/metrics"
	custommiddleware "github.com/mmeshcher/blueprint-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса blueprint.
func (h *Handler) SetupRouter(collector *metrics.Collector) *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.RequestID)
	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))
	if collector != nil {
		r.Use(custommiddleware.Metrics(collector))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.GetProducts)
		r.Post("/", h.AddProduct)
		r.Get("/{name}", h.GetProductByName)
		r.Put("/{name}", h.UpdateProduct)
		r.Delete("/{name}", h.DeleteProduct)
	})

	if collector != nil {
		r.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
