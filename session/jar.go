package session

import (
	"net/http"
	"net/url"
	"time"
)

// Persisted entry names. Values must round-trip through JSON except
// darkMode ("ON"/"OFF") and paymentMethod (plain string).
const (
	KeyDarkMode        = "darkMode"
	KeyCartItems       = "cartItems"
	KeyShippingAddress = "shippingAddress"
	KeyPaymentMethod   = "paymentMethod"
	KeyUserInfo        = "userInfo"
)

// Options control the scope of a persisted entry
type Options struct {
	Path     string
	SameSite http.SameSite
	MaxAge   time.Duration
}

// Jar is the narrow persistence interface the Store writes through. The
// backend (cookies, server-side session, memory) is swappable without
// touching reducer logic.
type Jar interface {
	Get(key string) (string, bool)
	Set(key, value string, opts Options)
	Remove(key string)
}

// CookieJar persists entries as cookies on a single request/response pair.
// Values are query-escaped since JSON payloads contain characters that are
// not valid in cookie values.
type CookieJar struct {
	w http.ResponseWriter
	r *http.Request
}

// NewCookieJar returns a Jar bound to one request/response pair
func NewCookieJar(w http.ResponseWriter, r *http.Request) *CookieJar {
	return &CookieJar{w: w, r: r}
}

func (j *CookieJar) Get(key string) (string, bool) {
	c, err := j.r.Cookie(key)
	if err != nil {
		return "", false
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return "", false
	}
	return v, true
}

func (j *CookieJar) Set(key, value string, opts Options) {
	http.SetCookie(j.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     opts.Path,
		SameSite: opts.SameSite,
		MaxAge:   int(opts.MaxAge / time.Second),
	})
}

func (j *CookieJar) Remove(key string) {
	http.SetCookie(j.w, &http.Cookie{
		Name:   key,
		Path:   "/",
		MaxAge: -1,
	})
}

// MemJar is a map-backed Jar used in tests and for server-side sessions
type MemJar struct {
	entries map[string]string
}

func NewMemJar() *MemJar {
	return &MemJar{entries: make(map[string]string)}
}

func (j *MemJar) Get(key string) (string, bool) {
	v, ok := j.entries[key]
	return v, ok
}

func (j *MemJar) Set(key, value string, _ Options) {
	j.entries[key] = value
}

func (j *MemJar) Remove(key string) {
	delete(j.entries, key)
}
