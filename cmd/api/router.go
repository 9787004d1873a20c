package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/op/go-logging"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mediabox/service/internal/health"
	"github.com/mediabox/service/internal/media"
	appMiddleware "github.com/mediabox/service/internal/middleware"
	"github.com/mediabox/service/internal/response"

	_ "github.com/mediabox/service/docs/swagger"
)

func newRouter(log *logging.Logger, mediaHandler *media.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "method not allowed")
	})

	r.Get("/health", health.Check)
	r.Post("/upload", mediaHandler.Upload)
	r.Get("/files", mediaHandler.List)

	// Swagger UI, available at http://localhost:5001/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
