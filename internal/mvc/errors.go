// internal/mvc/errors.go
//
// Render failures.  The two deployment errors (no template set, file not
// readable) stop Execute before any output; TemplateError wraps whatever
// the engine reported.
package mvc

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTemplate is returned by Execute when no template was set.
	ErrMissingTemplate = errors.New("mvc: a template has not been specified")

	// ErrUnreadableTemplate matches every *UnreadableTemplateError.
	ErrUnreadableTemplate = errors.New("mvc: template not readable")
)

// UnreadableTemplateError carries the fully resolved path that failed the
// readability check.
type UnreadableTemplateError struct {
	Path string
}

func (e *UnreadableTemplateError) Error() string {
	return fmt.Sprintf("mvc: template file %s does not exist or is not readable", e.Path)
}

// Is lets errors.Is(err, ErrUnreadableTemplate) match.
func (e *UnreadableTemplateError) Is(target error) bool {
	return target == ErrUnreadableTemplate
}

// TemplateError wraps a failure raised while the engine evaluated a
// template.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("mvc: render %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }
