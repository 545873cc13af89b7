package httpserver

import "net/http"

// Routes defines HTTP endpoints.
type Routes struct {
	Update http.HandlerFunc
	Data   http.HandlerFunc
	Health http.HandlerFunc
}

// NewRouter sets up HTTP routing.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Update != nil {
		mux.Handle("/update", method(http.MethodPost, routes.Update))
	}
	if routes.Data != nil {
		mux.Handle("/data", method(http.MethodGet, routes.Data))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
