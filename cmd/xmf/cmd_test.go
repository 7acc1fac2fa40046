package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yanizio/xmf/internal/bootstrap"
)

// newSiteRoot lays out a site with one unit and a global template.
func newSiteRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"conf/xmf.yaml":                     "site:\n  url: https://example.test\n  name: Example\n",
		"modules/news/templates/index.html": `<h1>{{ .template.title }}</h1>{{ range .template.tags }}[{{ . }}]{{ end }}`,
		"modules/xmf/templates/footer.html": `footer of {{ .mojavi.Name }}`,
		"modules/blog/templates/post.tpl":   `{{ template.title|upper }}`,
		"attrs.yaml":                        "title: From YAML\ntags: [a, b]\n",
	}
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderUnitTemplate(t *testing.T) {
	root := newSiteRoot(t)
	out, err := execute(t, "--root", root, "render", "index.html", "--unit", "news", "--set", "title=Hi")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<h1>Hi</h1>" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderAttrsFileAndCapture(t *testing.T) {
	root := newSiteRoot(t)
	out, err := execute(t, "--root", root, "render", "index.html", "--unit", "news",
		"--attrs", filepath.Join(root, "attrs.yaml"), "--capture")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<h1>From YAML</h1>[a][b]" {
		t.Fatalf("output = %q", out)
	}
}

func TestRenderFallbackAndPongo(t *testing.T) {
	root := newSiteRoot(t)

	out, err := execute(t, "--root", root, "render", "footer.html", "--unit", "news")
	if err != nil || out != "footer of Example" {
		t.Fatalf("fallback render = %q, %v", out, err)
	}

	out, err = execute(t, "--root", root, "render", "post.tpl", "--unit", "blog", "--set", "title=go")
	if err != nil || out != "GO" {
		t.Fatalf("pongo render = %q, %v", out, err)
	}
}

func TestRenderErrors(t *testing.T) {
	root := newSiteRoot(t)
	cases := [][]string{
		{"render", "index.html", "--unit", "shop"},
		{"render", "nope.html", "--unit", "news"},
		{"render", "index.html", "--unit", "news", "--set", "novalue"},
	}
	for _, args := range cases {
		if _, err := execute(t, append([]string{"--root", root}, args...)...); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
}

func TestExists(t *testing.T) {
	root := newSiteRoot(t)

	out, err := execute(t, "--root", root, "exists", "index.html", "--unit", "news")
	if err != nil || strings.TrimSpace(out) != "true" {
		t.Fatalf("exists index = %q, %v", out, err)
	}

	out, err = execute(t, "--root", root, "exists", "missing.html", "--unit", "news")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("exists missing err = %v", err)
	}
	if strings.TrimSpace(out) != "false" {
		t.Fatalf("exists missing output = %q", out)
	}
}

func TestPaths(t *testing.T) {
	root := newSiteRoot(t)
	out, err := execute(t, "--root", root, "paths")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	var got bootstrap.Paths
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != bootstrap.New("https://example.test", root) {
		t.Fatalf("paths = %+v", got)
	}
}

func TestUnits(t *testing.T) {
	root := newSiteRoot(t)
	out, err := execute(t, "--root", root, "units")
	if err != nil {
		t.Fatalf("units: %v", err)
	}
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		names = append(names, strings.Fields(line)[0])
	}
	if strings.Join(names, ",") != "blog,news,xmf" {
		t.Fatalf("units = %v", names)
	}
}

func TestRunExitCodes(t *testing.T) {
	root := newSiteRoot(t)
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	if code := run([]string{"--root", root, "exists", "index.html", "--unit", "news"}); code != 0 {
		t.Fatalf("exists hit exit code = %d", code)
	}
	if code := run([]string{"--root", root, "exists", "gone.html", "--unit", "news"}); code != 1 {
		t.Fatalf("exists miss exit code = %d", code)
	}
}
