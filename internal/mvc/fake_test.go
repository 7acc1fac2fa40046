package mvc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"text/template"
)

// fakeContext satisfies Context with injectable fields.
type fakeContext struct {
	unitDir string
	mode    RenderMode
	app     any
	out     bytes.Buffer
	req     Request
	user    User
	models  ModelManager
}

func (f *fakeContext) UnitDir() string        { return f.unitDir }
func (f *fakeContext) RenderMode() RenderMode { return f.mode }
func (f *fakeContext) App() any               { return f.app }
func (f *fakeContext) Output() io.Writer      { return &f.out }
func (f *fakeContext) Request() Request       { return f.req }
func (f *fakeContext) User() User             { return f.user }
func (f *fakeContext) Models() ModelManager   { return f.models }

// textEngine evaluates files with text/template against Scope.Data().
type textEngine struct{}

func (textEngine) Render(w io.Writer, path string, scope Scope) error {
	t, err := template.ParseFiles(path)
	if err != nil {
		return err
	}
	return t.Execute(w, scope.Data())
}

// panicEngine writes a little, then panics.
type panicEngine struct{}

func (panicEngine) Render(w io.Writer, _ string, _ Scope) error {
	_, _ = io.WriteString(w, "partial")
	panic("boom")
}

// writeFile creates dir/name with body and returns the full path.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// newFixture returns a context whose unit dir is a fresh temp dir.
func newFixture(t *testing.T) (*fakeContext, *Renderer) {
	t.Helper()
	ctx := &fakeContext{unitDir: t.TempDir(), app: map[string]any{"Name": "xmf"}}
	return ctx, NewRenderer(Static(ctx), textEngine{})
}
