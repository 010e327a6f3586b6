package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestModeNonePassesThrough(t *testing.T) {
	r := newRouter(Middleware(Config{Mode: ModeNone}, nil))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBasicAuthRejectsMissingCredentials(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	r := newRouter(BasicAuth(BasicConfig{Username: "operator", PasswordHash: hash}, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBasicAuthRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	r := newRouter(BasicAuth(BasicConfig{Username: "operator", PasswordHash: hash}, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.SetBasicAuth("operator", "wrong")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBasicAuthAcceptsCorrectCredentials(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	r := newRouter(BasicAuth(BasicConfig{Username: "operator", PasswordHash: hash}, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.SetBasicAuth("operator", "secret")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthRoundTrip(t *testing.T) {
	cfg := JWTConfig{Secret: "test-signing-secret", TokenDuration: time.Hour}
	token, _, err := IssueToken(cfg, "operator")
	require.NoError(t, err)

	r := newRouter(JWTAuth(cfg, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	cfg := JWTConfig{Secret: "test-signing-secret"}
	r := newRouter(JWTAuth(cfg, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsTokenFromDifferentSecret(t *testing.T) {
	issued, _, err := IssueToken(JWTConfig{Secret: "one-secret"}, "operator")
	require.NoError(t, err)

	r := newRouter(JWTAuth(JWTConfig{Secret: "other-secret"}, nil))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+issued)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
