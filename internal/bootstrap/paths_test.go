package bootstrap

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	root := filepath.FromSlash("/srv/site")
	got := New("https://example.test/", root+string(filepath.Separator))

	mod := filepath.Join(root, "modules", "xmf")
	want := Paths{
		URL:          "https://example.test/modules/xmf",
		CSSURL:       "https://example.test/modules/xmf/css",
		IncludeURL:   "https://example.test/modules/xmf/include",
		LanguageURL:  "https://example.test/modules/xmf/language",
		LibrariesURL: "https://example.test/modules/xmf/libraries",
		TemplatesURL: "https://example.test/modules/xmf/templates",
		KrumoURL:     "https://example.test/modules/xmf/css/krumo/",

		RootPath:      mod,
		CSSPath:       filepath.Join(mod, "css"),
		ImagesPath:    filepath.Join(mod, "images"),
		IncludePath:   filepath.Join(mod, "include"),
		LanguagePath:  filepath.Join(mod, "language"),
		LibrariesPath: filepath.Join(mod, "libraries"),
		TemplatesPath: filepath.Join(mod, "templates"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("New mismatch (-want +got):\n%s", diff)
	}
}
