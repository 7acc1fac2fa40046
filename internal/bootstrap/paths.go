// internal/bootstrap/paths.go
//
// Well-known URLs and filesystem paths of the xmf module inside a site.
//
// Layout
// ------
//   <siteURL>/modules/xmf            URL
//   <rootPath>/modules/xmf           RootPath
//   <RootPath>/templates             TemplatesPath (global fallback root)
//
// Notes
// -----
// • Trailing slashes on siteURL and rootPath are ignored.
// • KrumoURL keeps its trailing slash; the debug stylesheet is addressed
//   as a directory.
package bootstrap

import (
	"path/filepath"
	"strings"
)

const (
	Newline     = "\n"
	GlobalLeft  = "left"
	GlobalRight = "right"

	moduleDir = "modules/xmf"
)

// Paths groups the module's URLs and directories.
type Paths struct {
	URL          string `yaml:"url"`
	CSSURL       string `yaml:"css_url"`
	IncludeURL   string `yaml:"include_url"`
	LanguageURL  string `yaml:"language_url"`
	LibrariesURL string `yaml:"libraries_url"`
	TemplatesURL string `yaml:"templates_url"`
	KrumoURL     string `yaml:"krumo_url"`

	RootPath      string `yaml:"root_path"`
	CSSPath       string `yaml:"css_path"`
	ImagesPath    string `yaml:"images_path"`
	IncludePath   string `yaml:"include_path"`
	LanguagePath  string `yaml:"language_path"`
	LibrariesPath string `yaml:"libraries_path"`
	TemplatesPath string `yaml:"templates_path"`
}

// New derives every path from the site URL and the site root directory.
func New(siteURL, rootPath string) Paths {
	url := strings.TrimRight(siteURL, "/") + "/" + moduleDir
	root := filepath.Join(rootPath, filepath.FromSlash(moduleDir))

	return Paths{
		URL:          url,
		CSSURL:       url + "/css",
		IncludeURL:   url + "/include",
		LanguageURL:  url + "/language",
		LibrariesURL: url + "/libraries",
		TemplatesURL: url + "/templates",
		KrumoURL:     url + "/css/krumo/",

		RootPath:      root,
		CSSPath:       filepath.Join(root, "css"),
		ImagesPath:    filepath.Join(root, "images"),
		IncludePath:   filepath.Join(root, "include"),
		LanguagePath:  filepath.Join(root, "language"),
		LibrariesPath: filepath.Join(root, "libraries"),
		TemplatesPath: filepath.Join(root, "templates"),
	}
}
