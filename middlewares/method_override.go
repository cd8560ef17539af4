package middlewares

import "net/http"

// MethodOverride lets HTML forms reach PUT and DELETE routes by sending a
// POST with a _method field. It wraps the router because the method has to
// change before route matching happens.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch r.PostFormValue("_method") {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
