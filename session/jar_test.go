package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieJarRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	jar := NewCookieJar(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	jar.Set(KeyCartItems, `[{"key":"A","quantity":1}]`, Options{
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	})

	// Replay the written cookies on a follow-up request, as a browser would.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	jar2 := NewCookieJar(httptest.NewRecorder(), next)

	v, ok := jar2.Get(KeyCartItems)
	require.True(t, ok)
	assert.Equal(t, `[{"key":"A","quantity":1}]`, v)
}

func TestCookieJarRemoveExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	jar := NewCookieJar(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	jar.Remove(KeyUserInfo)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, KeyUserInfo, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCookieJarGetAbsent(t *testing.T) {
	jar := NewCookieJar(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	_, ok := jar.Get(KeyDarkMode)
	assert.False(t, ok)
}
