package host

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yanizio/xmf/internal/auth"
)

func TestArgsRequest(t *testing.T) {
	params := map[string]string{"id": "3"}
	r := NewArgsRequest(params)
	params["id"] = "4"

	if r.Method() != MethodCLI {
		t.Fatalf("Method = %q", r.Method())
	}
	if r.Parameter("id") != "3" || r.Parameter("nope") != "" {
		t.Fatalf("Parameter mismatch: %v", r.Parameters())
	}
	if r.ClientIP() != nil || r.Language() != "" {
		t.Fatal("argument request reports client details")
	}
}

func TestHTTPRequest(t *testing.T) {
	hr := httptest.NewRequest(http.MethodPost, "/x?a=1&b=2", nil)
	hr.Header.Set("Accept-Language", "pt-BR;q=0.9, en")
	hr.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	hr.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36")

	r := NewRequest(hr)
	if r.Method() != http.MethodPost || r.Parameter("a") != "1" {
		t.Fatalf("Method/Parameter mismatch")
	}
	if diff := cmp.Diff([]string{"a", "b"}, r.ParameterNames()); diff != "" {
		t.Fatalf("ParameterNames (-want +got):\n%s", diff)
	}
	if r.Language() != "pt" {
		t.Fatalf("Language = %q", r.Language())
	}
	if ip := r.ClientIP(); ip == nil || ip.String() != "203.0.113.9" {
		t.Fatalf("ClientIP = %v", ip)
	}
	if r.Agent().Browser != "Chrome" {
		t.Fatalf("Agent = %+v", r.Agent())
	}
}

func TestUserFromRequest(t *testing.T) {
	hr := httptest.NewRequest(http.MethodGet, "/", nil)
	if UserFromRequest(hr).Authenticated() {
		t.Fatal("bare request is authenticated")
	}

	ctx := auth.WithCredentials(auth.WithUser(hr.Context(), 9), "news_post")
	hr = hr.WithContext(ctx)
	hr.AddCookie(&http.Cookie{Name: "xmf_session", Value: "ann@example.test"})

	u := UserFromRequest(hr)
	if !u.Authenticated() || u.ID != 9 || u.Email != "ann@example.test" {
		t.Fatalf("user = %+v", u)
	}
	if !u.HasCredential("news_post") || u.HasCredential("news_admin") {
		t.Fatalf("credentials = %v", u.Credentials())
	}
	u.AddCredential("news_admin")
	if diff := cmp.Diff([]string{"news_admin", "news_post"}, u.Credentials()); diff != "" {
		t.Fatalf("Credentials (-want +got):\n%s", diff)
	}
}

func TestModelsMemoise(t *testing.T) {
	m := NewModels()
	var calls atomic.Int32
	m.Register("article", func() (any, error) {
		calls.Add(1)
		return &struct{ Table string }{"articles"}, nil
	})

	var wg sync.WaitGroup
	got := make([]any, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = m.Model("article")
		}(i)
	}
	wg.Wait()

	for _, g := range got[1:] {
		if g != got[0] {
			t.Fatal("Model returned different instances")
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("factory ran %d times", n)
	}

	if _, err := m.Model("comment"); !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("unknown model err = %v", err)
	}
}

func TestModelsRetryAfterFailure(t *testing.T) {
	m := NewModels()
	fail := true
	m.Register("feed", func() (any, error) {
		if fail {
			return nil, errors.New("offline")
		}
		return "feed", nil
	})
	if _, err := m.Model("feed"); err == nil {
		t.Fatal("expected factory error")
	}
	fail = false
	if v, err := m.Model("feed"); err != nil || v != "feed" {
		t.Fatalf("Model = %v, %v", v, err)
	}
}

func TestControllerDefaults(t *testing.T) {
	c := NewController(WithUnitDir("/srv/news/"))
	if c.UnitDir() != "/srv/news/" || c.Output() == nil || c.Request() == nil || c.User().Authenticated() {
		t.Fatal("unexpected defaults")
	}
	if _, err := c.Models().Model("x"); !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("default models err = %v", err)
	}
}
