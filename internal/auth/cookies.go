package auth

import (
	"net/http"
	"time"
)

const TokenCookieName = "token"

// SessionCookies binds the session token to the transport session.
// The cookie carries the signed token itself; clearing it is the only
// signout mechanism — tokens stay valid until natural expiry.
type SessionCookies struct {
	Secure bool
	TTL    time.Duration
}

func NewSessionCookies(secure bool, ttl time.Duration) SessionCookies {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return SessionCookies{Secure: secure, TTL: ttl}
}

func (c SessionCookies) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (c SessionCookies) Detach(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read extracts the token value from the inbound cookie set.
func (c SessionCookies) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
