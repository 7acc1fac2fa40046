package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yanizio/xmf/internal/mvc"
)

func writeConf(t *testing.T, root, body string) {
	t.Helper()
	dir := filepath.Join(root, "conf")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromDefaults(t *testing.T) {
	root := t.TempDir()
	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Paths.Modules != filepath.Join(root, "modules") {
		t.Fatalf("modules = %q", cfg.Paths.Modules)
	}
	want := filepath.Join(root, "modules", "xmf", "templates")
	if cfg.Paths.Templates != want {
		t.Fatalf("templates = %q, want %q", cfg.Paths.Templates, want)
	}
	if cfg.Render.RenderMode() != mvc.RenderClient || cfg.Render.CacheSize != 256 {
		t.Fatalf("render = %+v", cfg.Render)
	}
	if Get() != cfg {
		t.Fatal("Get does not return the last loaded config")
	}
}

func TestLoadFromYAMLAndEnv(t *testing.T) {
	root := t.TempDir()
	writeConf(t, root, `
site:
  url: https://example.test
  name: Example
paths:
  templates: shared/templates
render:
  mode: client
  cache_size: 16
`)
	t.Setenv("XMF_RENDER__MODE", "var")

	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Site.Name != "Example" || cfg.Render.CacheSize != 16 {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.Render.RenderMode() != mvc.RenderVar {
		t.Fatalf("env override not applied: mode = %q", cfg.Render.Mode)
	}
	if cfg.Paths.Templates != filepath.Join(root, "shared", "templates") {
		t.Fatalf("templates = %q", cfg.Paths.Templates)
	}
}

func TestLoadFromRejectsBadValues(t *testing.T) {
	root := t.TempDir()
	writeConf(t, root, `
render:
  mode: sideways
`)
	_, err := LoadFrom(root)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "render.mode") {
		t.Fatalf("error %q does not name the key", err)
	}
}
