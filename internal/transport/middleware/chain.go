package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck-backend/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so the first argument runs outermost:
// Chain(a, b)(h) == a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Stack is the global middleware every route passes through. The request id
// is assigned first so recovery and request logs can carry it; CORS answers
// preflights before a token is looked at.
func Stack(logger *slog.Logger, cors config.CORSConfig, tokens tokenValidator) Middleware {
	return Chain(
		RequestID,
		Recovery(logger),
		Logger(logger),
		CORS(cors),
		Auth(tokens, logger),
	)
}
