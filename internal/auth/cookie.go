package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// CookieOptions controls session cookie attributes.
type CookieOptions struct {
	Secure bool
	Domain string
}

// SetSessionCookie writes the session token as an HTTP-only cookie. Secure
// cookies use SameSite=None so cross-site clients can send them; browsers
// refuse SameSite=None without Secure, so insecure cookies fall back to Lax.
func SetSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time, ttl time.Duration, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  expiresAt,
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: sameSite(opts),
	})
}

// ClearSessionCookie instructs the client to drop the session cookie.
func ClearSessionCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: sameSite(opts),
	})
}

func sameSite(opts CookieOptions) http.SameSite {
	if opts.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
