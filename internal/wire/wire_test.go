package wire

import (
	"Blogverse/internal/api/config"
	"Blogverse/internal/api/dto"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSigner struct{}

func (fakeSigner) SignPut(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://uploads.example.com/" + objectName + "?sig=1", nil
}

type memDenylist struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func (d *memDenylist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids[jti] = struct{}{}
	return nil
}

func (d *memDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.ids[jti]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Storage:  config.StorageConfig{Driver: config.DriverMemory},
		Token:    config.TokenConfig{Secret: "test-secret", TTL: time.Hour},
		Security: config.SecurityConfig{BcryptCost: 4},
		Feed:     config.FeedConfig{LatestLimit: 5, TrendingLimit: 5, SearchPageSize: 2},
	}
}

func newTestApp(t *testing.T) *ApplicationContainer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := BuildApplication(testConfig(), NewMemoryStores(), fakeSigner{}, &memDenylist{ids: map[string]struct{}{}})
	require.NoError(t, err)
	return app
}

func do(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, h http.Handler) dto.SessionDTO {
	t.Helper()
	w := do(t, h, http.MethodPost, "/signup", gin.H{
		"fullname": "Jane Doe",
		"email":    "Jane@X.com",
		"password": "Passw0rd",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[dto.SessionDTO](t, w)
}

func publishBody(title string) gin.H {
	return gin.H{
		"title":  title,
		"des":    "a short description",
		"banner": "https://img.example.com/b.jpeg",
		"tags":   []string{"Go", "Backend"},
		"content": gin.H{
			"blocks": []gin.H{{"type": "paragraph", "data": gin.H{"text": "hello"}}},
		},
	}
}

func TestBuildApplication_OptionalComponents(t *testing.T) {
	app := newTestApp(t)
	assert.Nil(t, app.KafkaManager)
	assert.Nil(t, app.CronMgr)

	cfg := testConfig()
	cfg.Reconcile = config.ReconcileConfig{Enable: true, Spec: "0 */10 * * * *", Lookback: time.Hour}
	app, err := BuildApplication(cfg, NewMemoryStores(), fakeSigner{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, app.CronMgr)
}

func TestBuildApplication_MissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Token.Secret = ""
	_, err := BuildApplication(cfg, NewMemoryStores(), fakeSigner{}, nil)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	w := do(t, app.Router, http.MethodGet, "/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestSignupSigninFlow(t *testing.T) {
	app := newTestApp(t)

	session := signup(t, app.Router)
	assert.Equal(t, "jane", session.Username)
	assert.Equal(t, "Jane Doe", session.Fullname)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.ProfileImage)

	// 重复邮箱
	w := do(t, app.Router, http.MethodPost, "/signup", gin.H{
		"fullname": "Jane Again",
		"email":    "jane@x.com",
		"password": "Passw0rd",
	}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, w.Body.String())

	w = do(t, app.Router, http.MethodPost, "/signin", gin.H{"email": "JANE@x.com", "password": "Passw0rd"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "jane", decode[dto.SessionDTO](t, w).Username)

	w = do(t, app.Router, http.MethodPost, "/signin", gin.H{"email": "jane@x.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Incorrect password"}`, w.Body.String())

	w = do(t, app.Router, http.MethodPost, "/signin", gin.H{"email": "nobody@x.com", "password": "Passw0rd"}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Email not found"}`, w.Body.String())
}

func TestSignup_Validation(t *testing.T) {
	app := newTestApp(t)
	w := do(t, app.Router, http.MethodPost, "/signup", gin.H{
		"fullname": "Jo",
		"email":    "jo@x.com",
		"password": "Passw0rd",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "error")

	w = do(t, app.Router, http.MethodPost, "/signup", gin.H{
		"fullname": "Jane Doe",
		"email":    "jane@x.com",
		"password": "Abc\ndef1",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, app.Router, http.MethodPost, "/signup", "not an object", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBlog_RequiresToken(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app.Router, http.MethodPost, "/create-blog", publishBody("Hello"), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, app.Router, http.MethodPost, "/create-blog", publishBody("Hello"), "not-a-jwt")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateBlogAndDiscover(t *testing.T) {
	app := newTestApp(t)
	session := signup(t, app.Router)

	w := do(t, app.Router, http.MethodPost, "/create-blog", publishBody("Hello World"), session.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[dto.CreatePostResponse](t, w)
	assert.Regexp(t, `^Hello-World-`, created.ID)

	// 缺少 banner
	body := publishBody("No Banner")
	delete(body, "banner")
	w = do(t, app.Router, http.MethodPost, "/create-blog", body, session.AccessToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"You must provide a banner to publish the blog"}`, w.Body.String())

	w = do(t, app.Router, http.MethodGet, "/latest-blogs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	latest := decode[dto.BlogListDTO](t, w)
	require.Len(t, latest.Blogs, 1)
	assert.Equal(t, created.ID, latest.Blogs[0].BlogID)
	assert.Equal(t, "Hello World", latest.Blogs[0].Title)
	assert.Equal(t, "jane", latest.Blogs[0].Author.Username)
	assert.Equal(t, []string{"go", "backend"}, latest.Blogs[0].Tags)

	w = do(t, app.Router, http.MethodGet, "/trending-blogs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.BlogListDTO](t, w).Blogs, 1)

	w = do(t, app.Router, http.MethodPost, "/search-blog-posts", gin.H{"tag": "go", "page": 1}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.BlogListDTO](t, w).Blogs, 1)

	w = do(t, app.Router, http.MethodPost, "/search-blog-posts", gin.H{"tag": "rust"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.BlogListDTO](t, w).Blogs)

	w = do(t, app.Router, http.MethodGet, "/search-blog-counts?tag=go", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_docs":1}`, w.Body.String())

	w = do(t, app.Router, http.MethodPost, "/search-blog-counts", gin.H{"query": "world"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_docs":1}`, w.Body.String())

	w = do(t, app.Router, http.MethodPost, "/search-blog-counts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_docs":1}`, w.Body.String())
}

func TestGetUploadURL(t *testing.T) {
	app := newTestApp(t)
	w := do(t, app.Router, http.MethodGet, "/get-upload-url", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[dto.UploadURLDTO](t, w)
	assert.Regexp(t, `^https://uploads\.example\.com/[0-9a-f]{5}-\d+\.jpeg\?sig=1$`, out.UploadURL)
}

func TestSignout_RevokesToken(t *testing.T) {
	app := newTestApp(t)
	session := signup(t, app.Router)

	w := do(t, app.Router, http.MethodPost, "/signout", nil, session.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, app.Router, http.MethodPost, "/create-blog", publishBody("After Signout"), session.AccessToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSearchBlogCounts_GetWithBody(t *testing.T) {
	app := newTestApp(t)
	session := signup(t, app.Router)

	goPost := publishBody("Hello Go")
	goPost["tags"] = []string{"go"}
	rustPost := publishBody("Hello Rust")
	rustPost["tags"] = []string{"rust"}
	for _, body := range []gin.H{goPost, rustPost} {
		w := do(t, app.Router, http.MethodPost, "/create-blog", body, session.AccessToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := do(t, app.Router, http.MethodPost, "/search-blog-posts", gin.H{"tag": "rust", "page": 1}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.BlogListDTO](t, w).Blogs, 1)

	w = do(t, app.Router, http.MethodGet, "/search-blog-counts", gin.H{"tag": "rust"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_docs":1}`, w.Body.String())

	// 请求体优先于查询参数
	w = do(t, app.Router, http.MethodGet, "/search-blog-counts?tag=go", gin.H{"tag": "python"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_docs":0}`, w.Body.String())

	w = do(t, app.Router, http.MethodGet, "/search-blog-counts?query=hello", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_docs":2}`, w.Body.String())

	w = do(t, app.Router, http.MethodGet, "/search-blog-counts", "not an object", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
