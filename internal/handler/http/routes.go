// SPDX-License-Identifier: GPL-2.0-or-later

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRequestMetrics)

	// the scraper posts its results to the root path
	router.Post("/", h.ingest)

	router.Group(func(r chi.Router) {
		r.Get("/api/titles/{id}", h.getTitle)
		r.Get("/api/people/{id}", h.getPerson)
	})

	router.Get("/healthz", h.health)
	router.Handle("/metrics", promhttp.Handler())

	return router
}
