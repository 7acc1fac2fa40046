package auth

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUserAndCredentials(t *testing.T) {
	ctx := context.Background()
	if _, ok := UserID(ctx); ok {
		t.Fatal("empty context reports a user")
	}

	ctx = WithUser(ctx, 42)
	ctx = WithCredentials(ctx, "a")
	ctx = WithCredentials(ctx, "b", "c")

	if id, ok := UserID(ctx); !ok || id != 42 {
		t.Fatalf("UserID = %d, %v", id, ok)
	}
	got := Credentials(ctx)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("Credentials mismatch (-want +got):\n%s", diff)
	}
	got[0] = "z"
	if Credentials(ctx)[0] != "a" {
		t.Fatal("Credentials exposes internal slice")
	}
}
