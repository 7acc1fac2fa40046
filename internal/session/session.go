// internal/session/session.go
//
// Cookie session for the render host.
//
// Context
//   The host only needs to know who is browsing so templates can greet
//   them.  The cookie "xmf_session" stores the user's e-mail address in
//   plaintext; there is no server-side store.
//
//------------------------------------------------------------------------------

package session

import (
	"net/http"
	"time"
)

const (
	cookieName = "xmf_session"
	lifetime   = 14 * 24 * time.Hour
)

// LoginUser sets a session cookie containing the user's e-mail.
func LoginUser(w http.ResponseWriter, r *http.Request, email string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    email,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(lifetime),
	})
}

// LogoutUser clears the session cookie.
func LogoutUser(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// CurrentEmail returns the e-mail stored in the session, if any.
//
// ok == false when the cookie is missing or empty.
func CurrentEmail(r *http.Request) (email string, ok bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
