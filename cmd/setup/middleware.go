package setup

import (
	"net/http"
	"time"

	"github.com/IsaacDSC/pokedex/pkg/ctxlogger"
	"github.com/IsaacDSC/pokedex/pkg/logs"
	"github.com/google/uuid"
)

// RequestLogger attaches a request-scoped logger to the context and logs the
// request once it has been served. Every response body in this service is
// JSON, so the content type is set here instead of in each handler.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		w.Header().Set("Content-Type", "application/json")

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		logger := logs.With(
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"request_id", requestID,
		)

		ctx := ctxlogger.WithLogger(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))

		logger.Info("request handled", "elapsed_time", time.Since(start))
	})
}
