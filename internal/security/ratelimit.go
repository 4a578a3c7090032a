package security

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter implementa rate limiting simples em memória
type RateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	limits   map[string]RateLimit
}

// RateLimit define limites para diferentes endpoints
type RateLimit struct {
	MaxRequests int
	Window      time.Duration
}

// NewRateLimiter cria um rate limiter com os limites dos endpoints sensíveis
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limits: map[string]RateLimit{
			"login":      {MaxRequests: 5, Window: 1 * time.Minute},
			"register":   {MaxRequests: 3, Window: 1 * time.Hour},
			"newsletter": {MaxRequests: 5, Window: 1 * time.Hour},
		},
	}

	// Limpar requisições antigas periodicamente
	go rl.cleanup()

	return rl
}

// Allow verifica se uma requisição é permitida
func (rl *RateLimiter) Allow(key, endpoint string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limit, exists := rl.limits[endpoint]
	if !exists {
		return true // Sem limite para endpoints não configurados
	}

	now := time.Now()
	windowStart := now.Add(-limit.Window)

	valid := rl.requests[key][:0:0]
	for _, reqTime := range rl.requests[key] {
		if reqTime.After(windowStart) {
			valid = append(valid, reqTime)
		}
	}

	if len(valid) >= limit.MaxRequests {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

// cleanup remove chaves sem requisições recentes
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, requests := range rl.requests {
			valid := requests[:0:0]
			for _, reqTime := range requests {
				if reqTime.After(cutoff) {
					valid = append(valid, reqTime)
				}
			}
			if len(valid) == 0 {
				delete(rl.requests, key)
			} else {
				rl.requests[key] = valid
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitMiddleware cria um middleware de rate limiting por IP
func RateLimitMiddleware(rl *RateLimiter, endpoint string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r) + ":" + endpoint

			if !rl.Allow(key, endpoint) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"message":"Too many requests. Please try again later."}`))
				return
			}

			next(w, r)
		}
	}
}

// ClientIP extrai o IP real do cliente (proxy/load balancer à frente)
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
