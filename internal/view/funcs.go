// internal/view/funcs.go
//
// Template helpers shared by every HTML template set.
//
//	{{ dict "k" 1 "k2" "v" }}             map literal for sub-templates
//	{{ sanitize .template.body }}         user HTML through bluemonday UGC
//	{{ default "Guest" .template.name }}  fallback for nil or ""
//	{{ join ", " .template.tags }}        join a list of values
//	{{ slug .template.title }}            lower-kebab ASCII, "item" when empty
//	{{ browser .template.agent }}         User-Agent helpers (see ua.Info)
package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/yanizio/xmf/internal/ua"
)

const maxSlug = 100

// ugc is safe for concurrent use once built.
var ugc = bluemonday.UGCPolicy()

func buildFuncMap() template.FuncMap {
	fm := template.FuncMap{
		"dict":     dict,
		"sanitize": sanitize,
		"default":  defaultValue,
		"join":     join,
		"slug":     slug,
	}
	for k, v := range uaFuncMap() {
		fm[k] = v
	}
	return fm
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}

// sanitize strips unsafe markup and returns the rest as trusted HTML.
func sanitize(s string) template.HTML {
	return template.HTML(ugc.Sanitize(s))
}

func defaultValue(def, v any) any {
	if v == nil {
		return def
	}
	if s, ok := v.(string); ok && s == "" {
		return def
	}
	return v
}

func join(sep string, items any) string {
	switch t := items.(type) {
	case []string:
		return strings.Join(t, sep)
	case []any:
		parts := make([]string, len(t))
		for i, v := range t {
			parts[i] = fmt.Sprint(v)
		}
		return strings.Join(parts, sep)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// slug lower-cases s and turns every run of characters outside [a-z0-9]
// into one dash.  Results are capped at maxSlug bytes.
func slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	dash := false
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}

	out := strings.Trim(b.String(), "-")
	if len(out) > maxSlug {
		out = strings.TrimRight(out[:maxSlug], "-")
	}
	if out == "" {
		return "item"
	}
	return out
}

// uaFuncMap returns helpers keyed off a parsed ua.Info.
func uaFuncMap() template.FuncMap {
	return template.FuncMap{
		"browser":        func(i ua.Info) string { return i.Browser },
		"browserVersion": func(i ua.Info) string { return i.Version },
		"os":             func(i ua.Info) string { return i.OS },
		"osVersion":      func(i ua.Info) string { return i.OSVersion },
		"device":         func(i ua.Info) string { return i.Device },
		"platform":       func(i ua.Info) string { return i.Platform },
		"isBot":          func(i ua.Info) bool { return i.IsBot },
	}
}
