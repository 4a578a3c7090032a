package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter()

	// login: 5 por minuto
	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("1.2.3.4:login", "login"), "tentativa %d", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4:login", "login"), "sexta tentativa bloqueada")

	// Chave diferente não compartilha janela
	assert.True(t, rl.Allow("5.6.7.8:login", "login"))

	// Endpoint sem limite configurado passa sempre
	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("1.2.3.4:other", "other"))
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter()
	handler := RateLimitMiddleware(rl, "register")(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/auth/register", nil)
		req.RemoteAddr = "9.9.9.9:1234"
		rec := httptest.NewRecorder()
		handler(rec, req)
		return rec
	}

	// register: 3 por hora
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusCreated, do().Code)
	}
	rec := do()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many requests")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1:5555", ClientIP(req))

	req.Header.Set("X-Real-IP", "2.2.2.2")
	assert.Equal(t, "2.2.2.2", ClientIP(req))

	// X-Forwarded-For tem precedência
	req.Header.Set("X-Forwarded-For", "1.1.1.1")
	assert.Equal(t, "1.1.1.1", ClientIP(req))
}
