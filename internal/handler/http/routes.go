// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(allowAnyOrigin())
	router.Use(h.withTraceID, h.withLogging)
	router.Use(answerOptions)

	router.Post("/api/hume", h.forwardHumeMessage)
	router.Post("/auth/token", h.issueHumeToken)
	router.Post("/api/chat", h.chat)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

var corsMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodPost,
	http.MethodDelete,
	http.MethodOptions,
}

// allowAnyOrigin answers preflights for every route and origin.
func allowAnyOrigin() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: corsMethods,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
	})
}

// answerOptions ends every OPTIONS request that is not a CORS preflight with
// 204, on any path.
func answerOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ","))
		w.WriteHeader(http.StatusNoContent)
	})
}
