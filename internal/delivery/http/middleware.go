package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/Aman1684/medskillx/internal/logger"
	"github.com/Aman1684/medskillx/internal/metrics"
	"github.com/golang-jwt/jwt/v5"
)

func CORSMiddleware(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}

// AuthMiddleware exige bearer token e coloca {userId, username, role} no
// contexto. Respostas distintas: 401 faltando, 401 expirado, 403 inválido.
func AuthMiddleware(secret string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "Authentication token required.")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "Authentication token expired. Please log in again.")
				return
			}
			writeError(w, http.StatusForbidden, "Invalid authentication token.")
			return
		}

		ctx := r.Context()
		if userID, ok := claims["userId"].(string); ok {
			ctx = context.WithValue(ctx, "userID", userID)
		}
		if username, ok := claims["username"].(string); ok {
			ctx = context.WithValue(ctx, "username", username)
		}
		if role, ok := claims["role"].(string); ok {
			ctx = context.WithValue(ctx, "role", role)
		}
		next(w, r.WithContext(ctx))
	}
}

// RequireRoles restringe o handler a um allow-list de roles
func RequireRoles(roles ...domain.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value("role").(string)
			if !ok || role == "" {
				writeError(w, http.StatusForbidden, "Access denied: User role not identified.")
				return
			}
			for _, allowed := range roles {
				if domain.Role(role) == allowed {
					next(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "Access denied: Insufficient permissions.")
		}
	}
}

// RecoverMiddleware converte panics em 500 genérico
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Unhandled server error em %s %s: %v", r.Method, r.URL.Path, rec)
				writeError(w, http.StatusInternalServerError, "An unexpected server error occurred.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware registra contagem e duração por rota
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
