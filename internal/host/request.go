// internal/host/request.go
//
// Request adapters.
//
// Context
// -------
// mvc.Request only needs a method and named parameters.  Request answers
// both for an HTTP request (chi URL params first, then query and form
// values) and for a command-line invocation (a fixed parameter map).
//
// Request also carries what templates commonly want to know about the
// client: the parsed User-Agent, the primary Accept-Language tag, and the
// client IP.
//
// Notes
// -----
//   • The User-Agent is parsed lazily, once per Request.
//   • ClientIP trusts X-Forwarded-For and X-Real-Ip; the host is expected
//     to sit behind a proxy that sets them.
package host

import (
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/xmf/internal/ua"
)

// MethodCLI is the method reported by requests built from arguments.
const MethodCLI = "CLI"

// Request implements mvc.Request.
type Request struct {
	method string
	params map[string]string
	http   *http.Request

	agentOnce sync.Once
	agent     ua.Info
}

// NewRequest wraps an HTTP request.
func NewRequest(r *http.Request) *Request {
	return &Request{method: r.Method, http: r}
}

// NewArgsRequest returns a request whose parameters are params.
func NewArgsRequest(params map[string]string) *Request {
	p := make(map[string]string, len(params))
	for k, v := range params {
		p[k] = v
	}
	return &Request{method: MethodCLI, params: p}
}

// Method returns the HTTP method or MethodCLI.
func (r *Request) Method() string { return r.method }

// Parameter returns the named parameter or "".
//
// Lookup order:
//  1. chi URL parameter.
//  2. Query or form value.
//  3. Argument parameter.
func (r *Request) Parameter(name string) string {
	if r.http != nil {
		if v := chi.URLParam(r.http, name); v != "" {
			return v
		}
		if v := r.http.FormValue(name); v != "" {
			return v
		}
	}
	return r.params[name]
}

// Parameters returns every single-valued parameter the request carries.
func (r *Request) Parameters() map[string]string {
	out := make(map[string]string, len(r.params))
	for k, v := range r.params {
		out[k] = v
	}
	if r.http == nil {
		return out
	}
	_ = r.http.ParseForm()
	for k, vs := range r.http.Form {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	if rc := chi.RouteContext(r.http.Context()); rc != nil {
		for i, k := range rc.URLParams.Keys {
			out[k] = rc.URLParams.Values[i]
		}
	}
	return out
}

// ParameterNames returns the keys of Parameters, sorted.
func (r *Request) ParameterNames() []string {
	p := r.Parameters()
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Agent returns the parsed User-Agent.  Argument requests report an
// empty Info.
func (r *Request) Agent() ua.Info {
	r.agentOnce.Do(func() {
		if r.http != nil {
			r.agent = ua.Parse(r.http.UserAgent())
		}
	})
	return r.agent
}

// Language returns the first Accept-Language tag, lower-cased, without
// region or quality ("en-US;q=0.9" → "en").
func (r *Request) Language() string {
	if r.http == nil {
		return ""
	}
	al := r.http.Header.Get("Accept-Language")
	if al == "" {
		return ""
	}
	tag := strings.TrimSpace(strings.SplitN(al, ",", 2)[0])
	tag = strings.SplitN(tag, ";", 2)[0]
	tag = strings.SplitN(tag, "-", 2)[0]
	return strings.ToLower(tag)
}

// ClientIP extracts the left-most address from X-Forwarded-For or
// X-Real-Ip, falling back to RemoteAddr.  nil for argument requests.
func (r *Request) ClientIP() net.IP {
	if r.http == nil {
		return nil
	}
	if xff := r.http.Header.Get("X-Forwarded-For"); xff != "" {
		for _, part := range strings.Split(xff, ",") {
			if ip := net.ParseIP(strings.TrimSpace(part)); ip != nil {
				return ip
			}
		}
	}
	if xrip := r.http.Header.Get("X-Real-Ip"); xrip != "" {
		if ip := net.ParseIP(strings.TrimSpace(xrip)); ip != nil {
			return ip
		}
	}
	if h, _, err := net.SplitHostPort(r.http.RemoteAddr); err == nil {
		return net.ParseIP(h)
	}
	return nil
}
