package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordedCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestAttach_SetsSessionCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewSessionCookies(true, time.Hour).Attach(rec, "signed-token")

	cookie := recordedCookie(t, rec)
	assert.Equal(t, TokenCookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestDetach_ClearsSessionCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewSessionCookies(false, time.Hour).Detach(rec)

	cookie := recordedCookie(t, rec)
	assert.Equal(t, TokenCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestRead(t *testing.T) {
	t.Parallel()

	cookies := NewSessionCookies(false, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := cookies.Read(req)
	assert.False(t, ok)

	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "abc"})
	value, ok := cookies.Read(req)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)
}
