package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/iwvelando/income-tax/pkg/constants"
	"go.uber.org/zap"
)

type contextKey string

const correlationIDContextKey contextKey = "correlationID"

// withCorrelationID ensures every request carries a correlation ID, echoing a
// caller-supplied one or generating a new UUID.
func withCorrelationID(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := strings.TrimSpace(r.Header.Get(constants.CorrelationIDHeader))
		if correlationID == "" {
			correlationID = uuid.New().String()
		}
		w.Header().Set(constants.CorrelationIDHeader, correlationID)

		logger.Debug("request received",
			zap.String("op", "server.withCorrelationID"),
			zap.String("correlationId", correlationID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)

		ctx := context.WithValue(r.Context(), correlationIDContextKey, correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CorrelationIDFromContext returns the request's correlation ID, or "" if none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDContextKey).(string); ok {
		return id
	}
	return ""
}
