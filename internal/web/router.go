package web

import (
	_ "anagram/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r chi.Router, h *AnagramHandler) {
	r.Use(middleware.Recoverer)
	r.Group(func(r chi.Router) {
		r.Use(RequestIDMiddleware)
		r.Use(LoggerMiddleware(h.logger))
		r.Get("/permutations", h.Permutations)
		r.Get("/stats", h.Stats)
	})
	r.Get("/healthz", h.Healthz)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
