package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/openfreight/linehaul/internal/http/auth"
	"github.com/openfreight/linehaul/internal/http/export"
	"github.com/openfreight/linehaul/internal/http/settlement"
)

func New(
	jwtSecret string,
	settlementsV1 *settlement.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/settlements", func(r chi.Router) {
			settlementsV1.Routes(r)
		})

		r.Route("/batches", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			settlementsV1.BatchRoutes(r)
		})

		r.Route("/export", func(r chi.Router) {
			exportV1.Routes(r)
		})
	})

	return router
}
