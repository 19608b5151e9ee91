package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/auth"
)

func setupGuardedRoute(t *testing.T, tokens *auth.JWTService) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.GET("/admin/ping", AdminOnly(tokens), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"admin_id": c.GetString(ContextAdminID)})
	})
	return r
}

func TestAdminOnly_ValidToken(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	r := setupGuardedRoute(t, tokens)

	token, err := tokens.Generate("a1", "admin@example.com", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a1")
}

func TestAdminOnly_MissingHeader(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	r := setupGuardedRoute(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_MalformedHeader(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	r := setupGuardedRoute(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_ExpiredToken(t *testing.T) {
	issuer := auth.NewJWTService("test-secret", -time.Minute)
	verifier := auth.NewJWTService("test-secret", time.Hour)
	r := setupGuardedRoute(t, verifier)

	token, err := issuer.Generate("a1", "admin@example.com", "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_NonAdminRole(t *testing.T) {
	tokens := auth.NewJWTService("test-secret", time.Hour)
	r := setupGuardedRoute(t, tokens)

	token, err := tokens.Generate("u1", "user@example.com", "viewer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
