package internal

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Router is what handlers see when they declare routes. Route middleware
// passed to GET, POST or OPTIONS wraps only that route.
type Router interface {
	GET(path string, h HandlerFunc, mw ...Middleware)
	POST(path string, h HandlerFunc, mw ...Middleware)
	OPTIONS(path string, h HandlerFunc, mw ...Middleware)

	// Route declares routes under a shared path prefix.
	Route(prefix string, fn func(r Router))

	// Use adds middleware to every route declared after it on this router.
	Use(mw ...Middleware)
}

type routerAdapter struct {
	router chi.Router
	app    *App
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodGet, path, h, mw)
}

func (r *routerAdapter) POST(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodPost, path, h, mw)
}

func (r *routerAdapter) OPTIONS(path string, h HandlerFunc, mw ...Middleware) {
	r.handle(http.MethodOptions, path, h, mw)
}

func (r *routerAdapter) Route(prefix string, fn func(Router)) {
	r.router.Route(prefix, func(sub chi.Router) {
		fn(&routerAdapter{router: sub, app: r.app})
	})
}

func (r *routerAdapter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.router.Use(r.app.adaptMiddleware(m))
	}
}

// handle registers h with mw applied in listed order, outermost first.
func (r *routerAdapter) handle(method, path string, h HandlerFunc, mw []Middleware) {
	for _, m := range slices.Backward(mw) {
		h = m(h)
	}
	r.router.Method(method, path, r.app.wrapHandler(h))
}

// adaptMiddleware lets a Middleware sit in chi's stack. Values it stores on
// the context reach the route handler through the request.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newContext(w, r, a.logger)
			err := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})(c)
			if err != nil {
				a.handleError(c, err)
			}
		})
	}
}
