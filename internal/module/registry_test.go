package module

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("news", "/srv/modules/news")
	r.Register("blog", "/srv/modules/blog/")

	dir, ok := r.Lookup("news")
	if !ok || dir != "/srv/modules/news"+string(filepath.Separator) {
		t.Fatalf("Lookup(news) = %q, %v", dir, ok)
	}
	if dir, _ := r.Lookup("blog"); dir != "/srv/modules/blog/" {
		t.Fatalf("Lookup(blog) = %q", dir)
	}
	if _, err := r.Dir("shop"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("Dir(shop) err = %v", err)
	}
	if diff := cmp.Diff([]string{"blog", "news"}, r.Names()); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"news/templates", "blog/templates", "assets"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// a file named templates does not make a unit
	if err := os.MkdirAll(filepath.Join(root, "odd"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "odd", "templates"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	n, err := r.Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if n != 2 {
		t.Fatalf("Discover found %d units, want 2", n)
	}
	if diff := cmp.Diff([]string{"blog", "news"}, r.Names()); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}

	if _, err := r.Discover(filepath.Join(root, "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
