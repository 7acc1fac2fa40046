// internal/mvc/path.go
//
// Path classification and readability checks used by template resolution.
// Both separators are accepted everywhere, so Windows-style template paths
// configured on a POSIX host still classify the same way.
package mvc

import (
	"os"
	"strings"
)

// IsPathAbsolute reports whether path is rooted: at least two bytes long
// and starting with a slash or backslash, or carrying a drive letter
// ("C:").
func IsPathAbsolute(path string) bool {
	if len(path) < 2 {
		return false
	}
	return path[0] == '/' || path[0] == '\\' || path[1] == ':'
}

// splitTemplate separates an absolute template path into its directory
// (with trailing separator) and base name.
func splitTemplate(path string) (dir, name string) {
	i := strings.LastIndexAny(path, `/\`)
	if i < 0 {
		// Drive-relative form such as "C:page.html".
		if len(path) >= 2 && path[1] == ':' {
			return path[:2], path[2:]
		}
		return "", path
	}
	return path[:i+1], path[i+1:]
}

// withSeparator appends "/" unless dir is empty or already ends in a
// separator.  An empty dir stays empty so it never turns into the root.
func withSeparator(dir string) string {
	if dir == "" {
		return ""
	}
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, `\`) {
		return dir
	}
	return dir + "/"
}

// readable reports whether path names a regular file that can be opened.
func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	fi, err := f.Stat()
	return err == nil && fi.Mode().IsRegular()
}
