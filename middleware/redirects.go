package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Redirects answers legacy paths with a permanent redirect before the
// request reaches the router. Paths match exactly, ignoring one trailing
// slash; the query string is carried over.
func Redirects(table map[string]string, log zerolog.Logger, next http.Handler) http.Handler {
	if len(table) == 0 {
		return next
	}
	normalized := make(map[string]string, len(table))
	for from, to := range table {
		normalized[trimSlash(from)] = to
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, ok := normalized[trimSlash(r.URL.Path)]
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if r.URL.RawQuery != "" && !strings.Contains(target, "?") {
			target += "?" + r.URL.RawQuery
		}
		log.Debug().Str("from", r.URL.Path).Str("to", target).Msg("Legacy redirect")
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	})
}

func trimSlash(p string) string {
	if len(p) > 1 {
		return strings.TrimRight(p, "/")
	}
	return p
}
