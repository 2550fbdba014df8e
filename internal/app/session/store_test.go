package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type counter struct{ n int }

func newTestRouter(store *Store[*counter]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(store.Middleware()...)
	r.GET("/", func(c *gin.Context) {
		v := store.Get(c)
		v.n++
		c.String(http.StatusOK, "%d", v.n)
	})
	return r
}

func TestStore_IssuesCookie(t *testing.T) {
	store := NewStore(time.Minute, []byte("0123456789abcdef0123456789abcdef"), func() *counter { return &counter{} }, zap.NewNop())
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Error(t, uuid.Validate(cookies[0].Value), "cookie value is signed, not the raw id")
}

func TestStore_KeepsStatePerSession(t *testing.T) {
	store := NewStore(time.Minute, []byte("0123456789abcdef0123456789abcdef"), func() *counter { return &counter{} }, zap.NewNop())
	r := newTestRouter(store)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := first.Result().Cookies()[0]

	second := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(second, req)
	assert.Equal(t, "2", second.Body.String())

	other := httptest.NewRecorder()
	r.ServeHTTP(other, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "1", other.Body.String())
	assert.Equal(t, 2, store.Len())
}

func TestStore_IgnoresTamperedCookie(t *testing.T) {
	store := NewStore(time.Minute, []byte("0123456789abcdef0123456789abcdef"), func() *counter { return &counter{} }, zap.NewNop())
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
	r.ServeHTTP(w, req)

	assert.Equal(t, "1", w.Body.String())
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "forged", cookies[0].Value)
}

func TestStore_RandomSecret(t *testing.T) {
	store := NewStore(time.Minute, nil, func() *counter { return &counter{} }, zap.NewNop())
	r := newTestRouter(store)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))

	second := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(first.Result().Cookies()[0])
	r.ServeHTTP(second, req)
	assert.Equal(t, "2", second.Body.String())
}
