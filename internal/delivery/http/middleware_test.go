package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aman1684/medskillx/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func makeToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   "u1",
		"username": "alice",
		"role":     "jobSeeker",
		"exp":      time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	var gotUserID, gotUsername, gotRole string
	protected := AuthMiddleware(testSecret, func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotUsername, gotRole = claims(r)
		w.WriteHeader(http.StatusOK)
	})

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/users/u1", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		protected(rec, req)
		return rec
	}

	t.Run("missing token", func(t *testing.T) {
		rec := do("")
		assert.Equal(t, 401, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authentication token required.")
	})

	t.Run("expired token", func(t *testing.T) {
		rec := do("Bearer " + makeToken(t, testSecret, -time.Hour))
		assert.Equal(t, 401, rec.Code)
		assert.Contains(t, rec.Body.String(), "expired")
	})

	t.Run("wrong signature", func(t *testing.T) {
		rec := do("Bearer " + makeToken(t, "other-secret", time.Hour))
		assert.Equal(t, 403, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid authentication token.")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := do("Bearer not.a.jwt")
		assert.Equal(t, 403, rec.Code)
	})

	t.Run("valid token populates context", func(t *testing.T) {
		rec := do("Bearer " + makeToken(t, testSecret, time.Hour))
		require.Equal(t, 200, rec.Code)
		assert.Equal(t, "u1", gotUserID)
		assert.Equal(t, "alice", gotUsername)
		assert.Equal(t, "jobSeeker", gotRole)
	})
}

func TestRequireRoles(t *testing.T) {
	guarded := RequireRoles(domain.RoleRecruiter)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	do := func(role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/jobs", nil)
		if role != "" {
			req = req.WithContext(withClaims(req.Context(), "u1", "alice", role))
		}
		rec := httptest.NewRecorder()
		guarded(rec, req)
		return rec
	}

	t.Run("no role in context", func(t *testing.T) {
		rec := do("")
		assert.Equal(t, 403, rec.Code)
		assert.Contains(t, rec.Body.String(), "User role not identified")
	})

	t.Run("wrong role", func(t *testing.T) {
		rec := do("jobSeeker")
		assert.Equal(t, 403, rec.Code)
		assert.Contains(t, rec.Body.String(), "Insufficient permissions")
	})

	t.Run("allowed role", func(t *testing.T) {
		assert.Equal(t, 200, do("recruiter").Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := CORSMiddleware("http://localhost:3000", next)

	t.Run("preflight short-circuits", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/jobs", nil))
		assert.Equal(t, 200, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("regular request passes through with headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})
}

func TestRecoverMiddleware(t *testing.T) {
	handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs", nil))
	assert.Equal(t, 500, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected server error occurred.")
}
