// internal/host/user.go
//
// Request user.
//
// The ID and credentials come from internal/auth (set by upstream
// middleware), the e-mail address from the internal/session cookie.  A
// user is authenticated when either is present.
package host

import (
	"net/http"
	"sort"
	"sync"

	"github.com/yanizio/xmf/internal/auth"
	"github.com/yanizio/xmf/internal/session"
)

// User implements mvc.User.
type User struct {
	ID    int64
	Email string

	mu    sync.RWMutex
	creds map[string]struct{}
}

// Anonymous returns a user with no identity and no credentials.
func Anonymous() *User {
	return &User{creds: map[string]struct{}{}}
}

// UserFromRequest builds the user attached to r.
func UserFromRequest(r *http.Request) *User {
	u := Anonymous()
	if id, ok := auth.UserID(r.Context()); ok {
		u.ID = id
	}
	if email, ok := session.CurrentEmail(r); ok {
		u.Email = email
	}
	u.AddCredential(auth.Credentials(r.Context())...)
	return u
}

// Authenticated reports whether the user is known.
func (u *User) Authenticated() bool {
	return u.ID != 0 || u.Email != ""
}

// HasCredential reports whether name was granted.
func (u *User) HasCredential(name string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	_, ok := u.creds[name]
	return ok
}

// AddCredential grants names.
func (u *User) AddCredential(names ...string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.creds == nil {
		u.creds = make(map[string]struct{}, len(names))
	}
	for _, n := range names {
		u.creds[n] = struct{}{}
	}
}

// Credentials returns the granted names, sorted.
func (u *User) Credentials() []string {
	u.mu.RLock()
	out := make([]string, 0, len(u.creds))
	for n := range u.creds {
		out = append(out, n)
	}
	u.mu.RUnlock()
	sort.Strings(out)
	return out
}
