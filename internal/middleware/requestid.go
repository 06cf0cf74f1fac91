package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ctxKey int

const requestIDKey ctxKey = 1

const RequestIDHeader = "X-Request-ID"

// RequestID keeps an incoming X-Request-ID or mints one. The id is echoed in the
// response, and the request context carries it together with a child of logger
// tagged "rid", so zerolog.Ctx(r.Context()) logs with the id attached.
func RequestID(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, rid)

			ctx := context.WithValue(r.Context(), requestIDKey, rid)
			ctx = logger.With().Str("rid", rid).Logger().WithContext(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
