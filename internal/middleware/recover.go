package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Recover answers a panicking request with a JSON 500. It logs through the
// request logger when RequestID ran before it, else through logger.
// http.ErrAbortHandler is passed on untouched.
func Recover(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log := zerolog.Ctx(r.Context())
				if log.GetLevel() == zerolog.Disabled {
					log = &logger
				}
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("path", r.URL.Path).
					Msg("panic")

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal", "rid": GetRequestID(r)})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
