package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kantocollect/salesops/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const testSecret = "test-secret-key-that-is-long-enough"

func signToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"wrong secret", "Bearer " + signToken(t, "another-secret", "operator-1", time.Hour), http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + signToken(t, testSecret, "operator-1", -time.Minute), http.StatusUnauthorized, "Token has expired"},
		{"empty subject", "Bearer " + signToken(t, testSecret, "", time.Hour), http.StatusUnauthorized, "Invalid token claims"},
		{"valid", "bearer " + signToken(t, testSecret, "operator-1", time.Hour), http.StatusOK, "operator-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rate, err := limiter.NewRateFromFormatted("2-M")
	require.NoError(t, err)
	r := gin.New()
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
		if i == 0 {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	var scoped *slog.Logger
	r.GET("/ping", func(c *gin.Context) {
		scoped = middleware.GetLoggerFromCtx(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, id)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
		assert.NotSame(t, slog.Default(), scoped)
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		got := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEqual(t, "not-a-uuid", got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
