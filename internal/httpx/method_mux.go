package httpx

import (
	"net/http"
	"sort"
	"strings"
)

// MethodMux chooses a handler based on the incoming HTTP method.
func MethodMux(handlers map[string]http.HandlerFunc) http.Handler {
	allowed := make([]string, 0, len(handlers))
	for method := range handlers {
		allowed = append(allowed, method)
	}
	sort.Strings(allowed)
	allow := strings.Join(allowed, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allow)
		Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
}
