// internal/mvc/mode.go
//
// Render modes.
//
// A Renderer either streams template output straight to the controller's
// output (RenderClient) or captures it into a string that the caller
// collects with FetchResult (RenderVar).  The zero value is RenderClient.
package mvc

import (
	"fmt"
	"strings"
)

// RenderMode selects where template output goes.
type RenderMode int

const (
	RenderClient RenderMode = iota // stream to Controller.Output()
	RenderVar                      // capture into the renderer result
)

// String returns the configuration spelling of m.
func (m RenderMode) String() string {
	switch m {
	case RenderClient:
		return "client"
	case RenderVar:
		return "var"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// ParseRenderMode accepts "client" or "var" (case-insensitive).  An empty
// string maps to RenderClient.
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "client":
		return RenderClient, nil
	case "var":
		return RenderVar, nil
	}
	return RenderClient, fmt.Errorf("mvc: unknown render mode %q", s)
}
