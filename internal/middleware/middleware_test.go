package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/identity"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

func newRouter(cfg *config.Config, seen *identity.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(logging.Discard()), CORSMiddleware())
	r.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/secured", AuthMiddleware(cfg), func(c *gin.Context) {
		*seen = CallerFrom(c)
		c.Status(http.StatusOK)
	})
	return r
}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuthMiddlewareExtractsCaller(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	var seen identity.Caller
	r := newRouter(cfg, &seen)

	token := sign(t, "s3cret", jwt.MapClaims{
		"sub":      "user-1",
		"clientId": "client-1",
		"roles":    []string{"owner", "professional"},
		"exp":      time.Now().Add(time.Minute).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", seen.UserID)
	assert.Equal(t, "client-1", seen.ClientID)
	assert.True(t, seen.HasRole("professional"))
	assert.False(t, seen.IsAdmin())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	var seen identity.Caller
	r := newRouter(cfg, &seen)

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic abc"},
		{"wrong secret", "Bearer " + sign(t, "other", jwt.MapClaims{"sub": "u"})},
		{"expired", "Bearer " + sign(t, "s3cret", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Minute).Unix()})},
		{"no subject", "Bearer " + sign(t, "s3cret", jwt.MapClaims{"clientId": "c"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secured", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	var seen identity.Caller
	r := newRouter(&config.Config{}, &seen)

	req := httptest.NewRequest(http.MethodOptions, "/open", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	var seen identity.Caller
	r := newRouter(&config.Config{}, &seen)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
}
