// internal/config/model.go
//
// Typed configuration model for xmf.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from its overlay layers:
//
//   • built-in defaults                       – see defaults(),
//   • optional `.env`                         – dotenv values,
//   • `conf/xmf.yaml`                         – primary static file,
//   • `XMF_`-prefixed environment overrides   – highest precedence.
//
// Validation happens immediately after unmarshal; the CLI fails fast if a
// value is malformed.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • `Paths.Root` is filled at runtime; YAML must not try to set it.
//   • Relative `paths.*` values are resolved against Root by the loader.

package config

import "github.com/yanizio/xmf/internal/mvc"

//
// Site section
//

// Site identifies the site the module is installed in.
type Site struct {
	URL  string `koanf:"url"  validate:"required,url"`
	Name string `koanf:"name" validate:"required"`
}

//
// Paths section
//

// Paths lists the directories the renderer reads from.
type Paths struct {
	Root      string `koanf:"-"` // XMF_ROOT or discovered parent
	Modules   string `koanf:"modules"   validate:"required"`
	Templates string `koanf:"templates"` // global fallback; empty means bootstrap TemplatesPath
}

//
// Render section
//

// Render holds renderer defaults.
type Render struct {
	Mode      string `koanf:"mode"       validate:"omitempty,oneof=client var"`
	CacheSize int    `koanf:"cache_size" validate:"gte=0"`
	Debug     bool   `koanf:"debug"`
}

// RenderMode returns Mode as an mvc.RenderMode.  Mode is validated on
// load, so the error path only matters for hand-built configs.
func (r Render) RenderMode() mvc.RenderMode {
	m, err := mvc.ParseRenderMode(r.Mode)
	if err != nil {
		return mvc.RenderClient
	}
	return m
}

//
// Log section
//

// Log controls the console tee of the file logger.
type Log struct {
	Tee bool `koanf:"tee"`
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads.
type Config struct {
	Site   Site   `koanf:"site"`
	Paths  Paths  `koanf:"paths"`
	Render Render `koanf:"render"`
	Log    Log    `koanf:"log"`
}
