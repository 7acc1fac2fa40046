package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	LoginUser(rec, httptest.NewRequest(http.MethodGet, "/", nil), "ann@example.test")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	if email, ok := CurrentEmail(req); !ok || email != "ann@example.test" {
		t.Fatalf("CurrentEmail = %q, %v", email, ok)
	}

	if _, ok := CurrentEmail(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("request without cookie has a session")
	}
}

func TestLogoutExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	LogoutUser(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cs := rec.Result().Cookies()
	if len(cs) != 1 || cs[0].Name != cookieName || cs[0].MaxAge >= 0 {
		t.Fatalf("unexpected cookies: %+v", cs)
	}
}
