// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-post-hub/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a JSON detail body. When the request path equals a
// registered pattern, the Allow header lists the methods of that route.
// Parameterised patterns are not expanded during the lookup.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}

			methods := make([]string, 0, len(route.Handlers))
			for method := range route.Handlers {
				methods = append(methods, method)
			}
			slices.Sort(methods)
			w.Header().Set("Allow", strings.Join(methods, ", "))
			break
		}

		utils.WriteError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}
}

// NotFound answers unknown routes with a JSON detail body.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
