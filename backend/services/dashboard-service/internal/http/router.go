package httpserver

import "net/http"

// Routes defines HTTP endpoints.
type Routes struct {
	Overview  http.HandlerFunc
	History   http.HandlerFunc
	Particles http.HandlerFunc
	Records   http.HandlerFunc
	Health    http.HandlerFunc
}

// NewRouter sets up HTTP routing.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Overview != nil {
		mux.Handle("/api/dashboard/overview", method(http.MethodGet, routes.Overview))
	}
	if routes.History != nil {
		mux.Handle("/api/dashboard/history", method(http.MethodGet, routes.History))
	}
	if routes.Particles != nil {
		mux.Handle("/api/dashboard/particles", method(http.MethodGet, routes.Particles))
	}
	if routes.Records != nil {
		mux.Handle("/api/dashboard/records", method(http.MethodGet, routes.Records))
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
