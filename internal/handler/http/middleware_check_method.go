// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A request whose path matches a route but whose method is not registered
// for it is answered by notFound instead of chi's 405, so GET /users on a
// POST-only endpoint looks the same as an unknown endpoint. Only exact route
// patterns are compared.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router, h.unknownRoute))
func CheckHTTPMethod(router *chi.Mux, notFound http.HandlerFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
