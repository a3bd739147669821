package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bikeshop-backend/internal/logger"
	"bikeshop-backend/internal/security"

	"github.com/google/uuid"
)

type contextKey string

const (
	contextKeyRequestID contextKey = "request_id"
	contextKeyStaff     contextKey = "staff_login"
)

// RequestID tags every request with a generated id for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLog logs one line per request with method, path and duration.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		requestID, _ := r.Context().Value(contextKeyRequestID).(string)
		logger.Info("Handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID)
	})
}

// Auth validates the bearer token on mutating requests and stores the
// staff login in the request context. Reads pass through unauthenticated.
func Auth(tokenManager security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokenManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyStaff, claims.Login)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// staffLogin returns the authenticated staff login, or "system" when the
// request carried no identity.
func staffLogin(r *http.Request) string {
	if login, ok := r.Context().Value(contextKeyStaff).(string); ok && login != "" {
		return login
	}
	return "system"
}
