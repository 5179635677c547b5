package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod answers requests whose path exists under another method
// with 405 Method Not Allowed and an Allow header listing the registered
// methods. Paths unknown to the router get 404 Not Found.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		var foundRoute *chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = &route
				break
			}
		}

		if foundRoute == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		methods := make([]string, 0, len(foundRoute.Handlers))
		for method := range foundRoute.Handlers {
			if method != "*" {
				methods = append(methods, method)
			}
		}
		sort.Strings(methods)

		w.Header().Set("Allow", strings.Join(methods, ", "))
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
