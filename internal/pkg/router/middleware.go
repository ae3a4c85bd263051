package router

import "net/http"

// Middleware decorates an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with the given middlewares. The first middleware in the list
// becomes the outermost wrapper, so it runs first on the way in.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
