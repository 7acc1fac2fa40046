// internal/host/routes.go
//
// HTTP surface for rendering unit templates.
//
// Context
// -------
// Routes returns a chi router an embedding server can mount.  It serves
//
//	GET /{unit}/{view}
//
// by building a Controller and a Renderer for the request, copying the
// query string into the attribute bag, and executing
// `<unit dir>/templates/<view>`.  A view without an extension gets
// DefaultExt.
//
// Attributes set for every request
// --------------------------------
//   • every query parameter (repeated keys become a list)
//   • "agent"    – ua.Info of the client
//   • "language" – primary Accept-Language tag
//   • "user"     – *User
//
// Status mapping
// --------------
//   • unit protected by Options.Policy → 401 or 403 (see internal/acl)
//   • unknown unit, bad view name, missing or unreadable template → 404
//   • any other render failure → 500, unless client-mode output already
//     reached the wire; then the response is left truncated and logged.
//
// The package opens no listener of its own.
package host

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/xmf/internal/acl"
	"github.com/yanizio/xmf/internal/middleware"
	"github.com/yanizio/xmf/internal/module"
	"github.com/yanizio/xmf/internal/mvc"
)

// DefaultExt is appended to view names that have no extension.
const DefaultExt = ".html"

// Options configures Routes.
type Options struct {
	Units       *module.Registry // nil means module.Default
	Engine      mvc.Engine
	App         App
	Mode        mvc.RenderMode
	FallbackDir string
	Models      *Models    // shared across requests; nil means a fresh set per request
	Policy      acl.Policy // credentials required per unit; nil leaves every unit open
	Log         *zap.SugaredLogger
}

type handler struct {
	opts Options
	log  *zap.SugaredLogger
}

// Routes builds the router.
func Routes(opts Options) chi.Router {
	if opts.Units == nil {
		opts.Units = module.Default
	}
	h := &handler{opts: opts, log: opts.Log}
	if h.log == nil {
		h.log = zap.S()
	}

	r := chi.NewRouter()
	r.Use(middleware.Security)
	r.With(opts.Policy.Middleware).Get("/{unit}/{view}", h.render)
	return r
}

func (h *handler) render(w http.ResponseWriter, r *http.Request) {
	unit := chi.URLParam(r, "unit")
	dir, ok := h.opts.Units.Lookup(unit)
	if !ok {
		http.NotFound(w, r)
		return
	}
	view, ok := viewName(chi.URLParam(r, "view"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	req := NewRequest(r)
	user := UserFromRequest(r)
	models := h.opts.Models
	if models == nil {
		models = NewModels()
	}
	out := &countingWriter{w: w}
	ctrl := NewController(
		WithUnitDir(dir),
		WithRenderMode(h.opts.Mode),
		WithApp(h.opts.App),
		WithOutput(out),
		WithRequest(req),
		WithUser(user),
		WithModels(models),
	)

	rnd := mvc.NewRenderer(mvc.Static(ctrl), h.opts.Engine,
		mvc.WithFallbackDir(h.opts.FallbackDir),
		mvc.WithLogger(h.log.With("unit", unit, "view", view)),
	)
	rnd.SetTemplate(view)
	for k, vs := range r.URL.Query() {
		if len(vs) == 1 {
			rnd.SetAttribute(k, vs[0])
			continue
		}
		c, _ := mvc.CollectionOf(vs)
		rnd.SetAttribute(k, c)
	}
	rnd.SetAttribute("agent", req.Agent())
	rnd.SetAttribute("language", req.Language())
	rnd.SetAttribute("user", user)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if ctrl.RenderMode() == mvc.RenderVar {
		body, err := rnd.FetchResult()
		if err != nil {
			h.fail(w, r, err, false)
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		_, _ = w.Write([]byte(body))
		return
	}

	if err := rnd.Execute(); err != nil {
		h.fail(w, r, err, out.n > 0)
	}
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error, streamed bool) {
	if streamed {
		h.log.Warnw("render failed after output was sent", "path", r.URL.Path, "err", err)
		return
	}
	w.Header().Del("Content-Type")
	if errors.Is(err, mvc.ErrMissingTemplate) || errors.Is(err, mvc.ErrUnreadableTemplate) {
		http.NotFound(w, r)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// viewName rejects names that could leave the templates directory.
func viewName(v string) (string, bool) {
	if v == "" || v == "." || v == ".." || strings.ContainsAny(v, `/\`) || strings.Contains(v, "..") {
		return "", false
	}
	if filepath.Ext(v) == "" {
		v += DefaultExt
	}
	return v, true
}

// countingWriter records how many bytes reached the response.
type countingWriter struct {
	w http.ResponseWriter
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
