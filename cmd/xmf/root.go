// cmd/xmf/root.go
//
// Root command and shared start-up.
//
// Every sub-command runs setup() through PersistentPreRunE, so config,
// logger, units, and engines are ready before RunE.  State lives on *cli
// rather than package globals so tests can build fresh command trees.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/yanizio/xmf/internal/bootstrap"
	"github.com/yanizio/xmf/internal/config"
	"github.com/yanizio/xmf/internal/host"
	"github.com/yanizio/xmf/internal/logger"
	"github.com/yanizio/xmf/internal/module"
	"github.com/yanizio/xmf/internal/view"
)

// cli carries what setup() builds.
type cli struct {
	rootDir string

	cfg    *config.Config
	log    *zap.SugaredLogger
	units  *module.Registry
	engine *view.Registry
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "xmf",
		Short: "Render unit templates outside the web host",
		Long: `xmf resolves and renders unit templates the same way the site does.

Templates named without a directory are looked up in
<unit dir>/templates/ and then in the global templates directory.

Examples:
  xmf render index.html --unit news --set title=Hello
  xmf render /srv/site/mail/welcome.tpl --attrs vars.yaml --capture
  xmf exists footer.html --unit news
  xmf paths
  xmf units`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}
	root.PersistentFlags().StringVar(&c.rootDir, "root", "", "site root (default: $XMF_ROOT or the nearest dir with conf/xmf.yaml)")

	root.AddCommand(
		newRenderCmd(c),
		newExistsCmd(c),
		newPathsCmd(c),
		newUnitsCmd(c),
	)
	return root
}

func (c *cli) setup() error {
	var err error
	if c.rootDir != "" {
		c.cfg, err = config.LoadFrom(c.rootDir)
	} else {
		c.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	tee := c.cfg.Log.Tee || term.IsTerminal(int(os.Stderr.Fd()))
	if c.log, err = logger.New(c.cfg.Paths.Root, tee); err != nil {
		return err
	}

	c.units = module.NewRegistry()
	n, err := c.units.Discover(c.cfg.Paths.Modules)
	switch {
	case err == nil:
		c.log.Debugw("units discovered", "dir", c.cfg.Paths.Modules, "count", n)
	case errors.Is(err, fs.ErrNotExist):
		c.log.Debugw("modules dir absent", "dir", c.cfg.Paths.Modules)
	default:
		return err
	}

	c.engine, err = view.New(view.Options{
		CacheSize: c.cfg.Render.CacheSize,
		Debug:     c.cfg.Render.Debug,
	})
	return err
}

func (c *cli) paths() bootstrap.Paths {
	return bootstrap.New(c.cfg.Site.URL, c.cfg.Paths.Root)
}

func (c *cli) app() host.App {
	return host.App{Name: c.cfg.Site.Name, Paths: c.paths()}
}
