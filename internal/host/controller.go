// internal/host/controller.go
//
// Concrete mvc.Context.
//
// A Controller is built per request (HTTP) or per invocation (CLI) with
// functional options.  Every option has a usable default, so
// NewController() alone yields a context that renders into io.Discard for
// an anonymous user.
package host

import (
	"io"

	"github.com/yanizio/xmf/internal/mvc"
)

var _ mvc.Context = (*Controller)(nil)

// Controller implements mvc.Context.
type Controller struct {
	unitDir string
	mode    mvc.RenderMode
	app     any
	out     io.Writer
	req     mvc.Request
	user    mvc.User
	models  mvc.ModelManager
}

// Option configures a Controller.
type Option func(*Controller)

// WithUnitDir sets the active unit directory.
func WithUnitDir(dir string) Option { return func(c *Controller) { c.unitDir = dir } }

// WithRenderMode sets the host-level render mode.
func WithRenderMode(m mvc.RenderMode) Option { return func(c *Controller) { c.mode = m } }

// WithApp sets the application handle.
func WithApp(app any) Option { return func(c *Controller) { c.app = app } }

// WithOutput sets the stream RenderClient output goes to.
func WithOutput(w io.Writer) Option { return func(c *Controller) { c.out = w } }

// WithRequest sets the request.
func WithRequest(r mvc.Request) Option { return func(c *Controller) { c.req = r } }

// WithUser sets the user.
func WithUser(u mvc.User) Option { return func(c *Controller) { c.user = u } }

// WithModels sets the model manager.
func WithModels(m mvc.ModelManager) Option { return func(c *Controller) { c.models = m } }

// NewController applies opts over the defaults.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		out:    io.Discard,
		req:    NewArgsRequest(nil),
		user:   Anonymous(),
		models: NewModels(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) UnitDir() string            { return c.unitDir }
func (c *Controller) RenderMode() mvc.RenderMode { return c.mode }
func (c *Controller) App() any                   { return c.app }
func (c *Controller) Output() io.Writer          { return c.out }
func (c *Controller) Request() mvc.Request       { return c.req }
func (c *Controller) User() mvc.User             { return c.user }
func (c *Controller) Models() mvc.ModelManager   { return c.models }
