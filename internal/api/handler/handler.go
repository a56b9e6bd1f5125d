package handler

import "net/http"

// Middleware wraps the routes that change tracker state.
type Middleware func(http.Handler) http.Handler

func passThrough(next http.Handler) http.Handler { return next }

func orPassThrough(m Middleware) Middleware {
	if m == nil {
		return passThrough
	}
	return m
}
