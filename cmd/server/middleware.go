package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type loggerKey struct{}

// requestLogger returns the logger carrying the request ID.
func requestLogger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID tags every request with an ID, taken from X-Request-ID when
// the client sends a valid UUID, and records its metrics.
func withRequestID(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		reqLogger := logger.With(zap.String("request_id", id))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		r = r.WithContext(context.WithValue(r.Context(), loggerKey{}, reqLogger))
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		// the mux records the matched pattern on the request
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		reqLogger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", elapsed))
	})
}
