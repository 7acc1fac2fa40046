// cmd/xmf/render.go
//
// `xmf render` and `xmf exists`.
//
// Both commands build a host.Controller for the chosen unit and a
// Renderer wired to the configured engines and fallback directory, so a
// template resolves here exactly as it would for a page request.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yanizio/xmf/internal/host"
	"github.com/yanizio/xmf/internal/mvc"
)

type locateFlags struct {
	unit string
	dir  string
}

func (f *locateFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.unit, "unit", "", "unit whose templates/ dir is searched")
	cmd.Flags().StringVar(&f.dir, "dir", "", "explicit template directory")
}

// renderer builds a Renderer for the located unit with extra controller
// options appended.
func (c *cli) renderer(f locateFlags, opts ...host.Option) (*mvc.Renderer, error) {
	unitDir := ""
	if f.unit != "" {
		d, err := c.units.Dir(f.unit)
		if err != nil {
			return nil, err
		}
		unitDir = d
	}

	base := []host.Option{
		host.WithUnitDir(unitDir),
		host.WithRenderMode(c.cfg.Render.RenderMode()),
		host.WithApp(c.app()),
	}
	ctrl := host.NewController(append(base, opts...)...)

	r := mvc.NewRenderer(mvc.Static(ctrl), c.engine,
		mvc.WithFallbackDir(c.cfg.Paths.Templates),
		mvc.WithLogger(c.log),
	)
	if f.dir != "" {
		r.SetTemplateDir(f.dir)
	}
	return r, nil
}

func newRenderCmd(c *cli) *cobra.Command {
	var (
		loc     locateFlags
		sets    []string
		attrs   string
		capture bool
	)
	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a template to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseSets(sets)
			if err != nil {
				return err
			}

			r, err := c.renderer(loc,
				host.WithOutput(cmd.OutOrStdout()),
				host.WithRequest(host.NewArgsRequest(params)),
			)
			if err != nil {
				return err
			}
			if attrs != "" {
				m, err := readAttrs(attrs)
				if err != nil {
					return err
				}
				r.SetArray(m)
			}
			for k, v := range params {
				r.SetAttribute(k, v)
			}
			r.SetTemplate(args[0])

			if capture {
				r.SetMode(mvc.RenderVar)
			}
			if capture || c.cfg.Render.RenderMode() == mvc.RenderVar {
				out, err := r.FetchResult()
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}
			return r.Execute()
		},
	}
	loc.bind(cmd)
	cmd.Flags().StringArrayVar(&sets, "set", nil, "attribute as key=value (repeatable)")
	cmd.Flags().StringVar(&attrs, "attrs", "", "YAML file with attributes")
	cmd.Flags().BoolVar(&capture, "capture", false, "capture the output before printing it")
	return cmd
}

func newExistsCmd(c *cli) *cobra.Command {
	var loc locateFlags
	cmd := &cobra.Command{
		Use:   "exists <template>",
		Short: "Report whether a template resolves to a readable file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.renderer(loc)
			if err != nil {
				return err
			}
			ok := r.TemplateExists(args[0], "")
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
	loc.bind(cmd)
	return cmd
}

// parseSets turns ["k=v", ...] into a map.  Later keys win.
func parseSets(sets []string) (map[string]string, error) {
	out := make(map[string]string, len(sets))
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("--set %q: want key=value", s)
		}
		out[strings.TrimSpace(k)] = v
	}
	return out, nil
}

// readAttrs decodes a YAML mapping into attributes.
func readAttrs(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("--attrs: %w", err)
	}
	m := map[string]any{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("--attrs %s: %w", path, err)
	}
	return m, nil
}
