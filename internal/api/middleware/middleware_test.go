package middleware

import (
	"Blogverse/internal/pkg/consts"
	"Blogverse/internal/pkg/logger"
	"Blogverse/internal/pkg/security"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memDenylist struct {
	revoked map[string]bool
	err     error
}

func (d *memDenylist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	d.revoked[jti] = true
	return nil
}

func (d *memDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return d.revoked[jti], d.err
}

func newAuthRouter(t *testing.T, denylist security.Denylist) (*gin.Engine, *security.TokenAuthority) {
	t.Helper()
	tokens, err := security.NewTokenAuthority("secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/private", AuthMiddleware(tokens, denylist), func(c *gin.Context) {
		ctxUserID, _ := c.Request.Context().Value(consts.UserIDKey).(string)
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "ctx_user_id": ctxUserID, "jti": GetClaims(c).ID})
	})
	return r, tokens
}

func doGet(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, tokens := newAuthRouter(t, security.NopDenylist())
	token, err := tokens.Issue("user-42")
	require.NoError(t, err)

	other, err := security.NewTokenAuthority("other-secret", 0)
	require.NoError(t, err)
	forged, err := other.Issue("user-42")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"scheme only", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusForbidden},
		{"wrong secret", "Bearer " + forged, http.StatusForbidden},
		{"valid", "Bearer " + token, http.StatusOK},
		{"any scheme name", "Token " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, "/private", tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"user_id":"user-42"`)
				assert.Contains(t, w.Body.String(), `"ctx_user_id":"user-42"`)
			} else {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	denylist := &memDenylist{revoked: map[string]bool{}}
	r, tokens := newAuthRouter(t, denylist)
	token, err := tokens.Issue("user-42")
	require.NoError(t, err)
	claims, err := tokens.Verify(token)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, doGet(r, "/private", "Bearer "+token).Code)
	require.NoError(t, denylist.Revoke(context.Background(), claims.ID, time.Hour))
	assert.Equal(t, http.StatusForbidden, doGet(r, "/private", "Bearer "+token).Code)
}

func TestAuthMiddleware_DenylistFailure(t *testing.T) {
	denylist := &memDenylist{revoked: map[string]bool{}, err: errors.New("redis down")}
	r, tokens := newAuthRouter(t, denylist)
	token, err := tokens.Issue("user-42")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, doGet(r, "/private", "Bearer "+token).Code)
}

func TestTraceMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(logger.TraceIDKey).(string)
		c.String(http.StatusOK, id)
	})

	w := doGet(r, "/", "")
	generated := w.Header().Get(TraceHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(TraceHeader))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://blog.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://blog.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://blog.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "", redact(nil))
	assert.Equal(t, "plain text", redact([]byte("plain text")))
	assert.Equal(t, `{"email":"a@b.co"}`, redact([]byte(`{"email":"a@b.co"}`)))

	out := redact([]byte(`{"email":"a@b.co","password":"Passw0rd"}`))
	assert.NotContains(t, out, "Passw0rd")
	assert.Contains(t, out, `"password":"[REDACTED]"`)

	out = redact([]byte(`{"access_token":"eyJ.abc.def","username":"jane"}`))
	assert.NotContains(t, out, "eyJ.abc.def")
	assert.Contains(t, out, `"username":"jane"`)
}
